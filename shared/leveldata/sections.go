package leveldata

// Sections returns the five authored sections in canonical order. Each call
// builds fresh values so callers can never alias shared slices.
func Sections() []WorldSection {
	return []WorldSection{
		heroSection(),
		aboutSection(),
		skillsSection(),
		projectsSection(),
		contactSection(),
	}
}

func page(id SectionID, terrain TerrainType, bg BackgroundType) WorldSection {
	return WorldSection{
		ID:             id,
		Width:          PageWidth,
		Height:         PageHeight,
		GroundLevel:    GroundY,
		TerrainType:    terrain,
		BackgroundType: bg,
		Entry:          EntryPoint{X: Tile * 2, Kind: EntryFall, Direction: Right},
		Title:          "sections." + string(id) + ".title",
	}
}

func deco(id string, x, y float64, frame string) Decoration {
	return Decoration{ID: id, X: x, Y: y, Frame: frame, Sheet: "tiles"}
}

func heroSection() WorldSection {
	const t = "terrain_grass"
	s := page(Hero, TerrainGrass, BackgroundHills)
	s.Terrain = concat(
		Terrain(0, 6, GroundY, t, "hero_ground", FlushBoth),
		Terrain(0, 2, L2, t, "hero_p1", FlushLeft),
		Terrain(Tile+32, 3, L3+32, t, "hero_p2", FlushNone),
		Terrain(Tile, 2, L5, t, "hero_p3", FlushNone),
		Terrain(0, 2, L6+32, t, "hero_p4", FlushLeft),
		Terrain(0, 1, L8, t, "hero_exit", FlushLeft),
	)
	s.Decorations = []Decoration{
		deco("hero_bush1", Tile*3+16, GroundY-32, "bush"),
		deco("hero_bush2", Tile*5, GroundY-32, "bush"),
		deco("hero_grass1", Tile+16, L2-32, "grass"),
		deco("hero_grass2", 16, L8-32, "grass"),
	}
	s.NPCs = []NPC{{
		ID:       "hero_frog",
		X:        Tile + 48,
		Y:        L3 + 32 - Tile,
		Sprite:   "frog",
		Name:     "npcs.frog.name",
		Dialogue: dialogue("hero", "frog"),
		Patrol:   &PatrolRange{MinX: Tile + 40, MaxX: Tile + 32 + Tile*3 - 48, Speed: 0.4},
	}}
	return s
}

func aboutSection() WorldSection {
	const t = "terrain_grass"
	s := page(About, TerrainGrass, BackgroundTrees)
	s.Terrain = concat(
		Terrain(Tile*4, 2, GroundY, t, "about_ground", FlushRight),
		Terrain(Tile*3, 2, L2, t, "about_p1", FlushNone),
		Terrain(Tile*4, 2, L3, t, "about_p2", FlushNone),
		Terrain(Tile, 2, L5, t, "about_p3", FlushNone),
		Terrain(Tile*2+32, 2, L6, t, "about_p4", FlushNone),
		Terrain(0, 1, L8, t, "about_exit", FlushLeft),
	)
	s.Decorations = []Decoration{
		deco("about_bush1", Tile*4+16, GroundY-32, "bush"),
		deco("about_bush2", Tile*5, GroundY-32, "bush"),
		deco("about_grass2", 16, L8-32, "grass"),
	}
	s.NPCs = []NPC{{
		ID:       "about_ladybug",
		X:        Tile + 16,
		Y:        L5 - Tile,
		Sprite:   "ladybug",
		Name:     "npcs.ladybug.name",
		Dialogue: dialogue("about", "ladybug"),
		Patrol:   &PatrolRange{MinX: Tile + 8, MaxX: Tile*2 - 16, Speed: 0.5},
	}}
	return s
}

func skillsSection() WorldSection {
	const t = "terrain_purple"
	s := page(Skills, TerrainPurple, BackgroundMushrooms)
	s.Terrain = concat(
		Terrain(Tile*3, 3, GroundY, t, "skills_ground", FlushRight),
		Terrain(Tile*2, 2, L2, t, "skills_bridge1", FlushNone),
		Terrain(0, 1, L3, t, "skills_tower_l1", FlushLeft),
		Terrain(Tile*5, 1, L3, t, "skills_tower_r1", FlushRight),
		Terrain(Tile*2, 2, L3, t, "skills_mid", FlushNone),
		Terrain(Tile*2, 2, L5, t, "skills_bridge2", FlushNone),
		Terrain(0, 1, L6, t, "skills_tower_l2", FlushLeft),
		Terrain(Tile*5, 1, L6, t, "skills_tower_r2", FlushRight),
		Terrain(Tile, 2, L8, t, "skills_exit", FlushNone),
	)
	s.Decorations = []Decoration{
		deco("skills_mushroom1", Tile*3+16, GroundY-32, "mushroom_red"),
		deco("skills_mushroom2", Tile*5, GroundY-32, "mushroom_brown"),
	}
	s.NPCs = []NPC{{
		ID:       "skills_snail",
		X:        Tile*2 + 16,
		Y:        L5 - Tile,
		Sprite:   "snail",
		Name:     "npcs.snail.name",
		Dialogue: dialogue("skills", "snail"),
		Patrol:   &PatrolRange{MinX: Tile*2 + 8, MaxX: Tile*4 - 48, Speed: 0.3},
	}}
	return s
}

func projectsSection() WorldSection {
	const t = "terrain_sand"
	s := page(Projects, TerrainSand, BackgroundDesert)
	s.Terrain = concat(
		Terrain(0, 1, GroundY, t, "projects_ground_l", FlushLeft),
		Terrain(Tile*4, 2, GroundY, t, "projects_ground_r", FlushRight),
		Terrain(0, 3, L1-16, t, "projects_p1", FlushLeft),
		Terrain(Tile, 2, L3+32, t, "projects_p2", FlushNone),
		Terrain(Tile*4, 2, L4+32, t, "projects_p3", FlushRight),
		Terrain(0, 1, L6, t, "projects_p4", FlushLeft),
		Terrain(Tile, 2, L8, t, "projects_exit", FlushNone),
	)
	s.Decorations = []Decoration{
		deco("projects_cactus1", Tile*5, GroundY-32, "cactus"),
	}
	s.NPCs = []NPC{{
		ID:           "projects_mouse",
		X:            Tile + 16,
		Y:            L3 + 32 - Tile,
		Sprite:       "mouse",
		Name:         "npcs.mouse.name",
		Dialogue:     dialogue("projects", "mouse"),
		ExternalLink: "https://github.com/pjhartwig",
		Patrol:       &PatrolRange{MinX: Tile + 8, MaxX: Tile*3 - 48, Speed: 0.4},
	}}
	return s
}

func contactSection() WorldSection {
	const t = "terrain_stone"
	s := page(Contact, TerrainStone, BackgroundClouds)
	s.Terrain = concat(
		Terrain(0, 1, GroundY, t, "contact_ground_l", FlushLeft),
		Terrain(Tile*4, 2, GroundY, t, "contact_ground_r", FlushRight),
		Terrain(Tile*3, 2, L2, t, "contact_p1", FlushNone),
		Terrain(Tile, 2, L3, t, "contact_p2", FlushNone),
		Terrain(Tile*2+32, 2, L5+32, t, "contact_p3", FlushNone),
		Terrain(0, 4, L7, t, "contact_victory", FlushLeft),
	)
	s.Decorations = []Decoration{
		deco("contact_flag", Tile*3, L7-32, "flag_blue_a"),
		deco("contact_torch1", Tile*4+16, GroundY-32, "torch_on_a"),
	}
	s.Ladders = []Ladder{{ID: "contact_ladder", X: 32, TopY: L7, HeightTiles: 7}}
	s.NPCs = []NPC{{
		ID:           "contact_frog",
		X:            Tile * 2,
		Y:            L7 - Tile,
		Sprite:       "frog",
		Name:         "npcs.frog.name",
		Dialogue:     dialogue("contact", "frog"),
		ExternalLink: "https://github.com/pjhartwig",
		Patrol:       &PatrolRange{MinX: Tile, MaxX: Tile*3 - 48, Speed: 0.3},
	}}
	return s
}
