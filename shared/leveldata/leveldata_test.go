package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainFrames(t *testing.T) {
	row := Terrain(0, 3, GroundY, "terrain_grass", "g", FlushNone)
	require.Len(t, row, 3)
	assert.Equal(t, "terrain_grass_horizontal_left", row[0].Frame)
	assert.Equal(t, "terrain_grass_horizontal_middle", row[1].Frame)
	assert.Equal(t, "terrain_grass_horizontal_right", row[2].Frame)
	assert.Equal(t, "g_2", row[2].ID)
	assert.Equal(t, 128.0, row[2].X)
	assert.True(t, row[0].Solid)

	both := Terrain(0, 2, GroundY, "t", "b", FlushBoth)
	assert.Equal(t, "t_horizontal_middle", both[0].Frame)
	assert.Equal(t, "t_horizontal_middle", both[1].Frame)
}

func TestTerrainSingleTileFacesOpenSide(t *testing.T) {
	cases := map[Flush]string{
		FlushNone:  "t_horizontal_middle",
		FlushLeft:  "t_horizontal_right",
		FlushRight: "t_horizontal_left",
		FlushBoth:  "t_horizontal_middle",
	}
	for flush, want := range cases {
		got := Terrain(0, 1, 0, "t", "x", flush)
		assert.Equal(t, want, got[0].Frame, "flush %d", flush)
	}
}

func TestBlockFrames(t *testing.T) {
	tiles := Block(0, 0, 3, 3, "t", "blk")
	require.Len(t, tiles, 9)
	assert.Equal(t, "t_block_top_left", tiles[0].Frame)
	assert.Equal(t, "t_block_top", tiles[1].Frame)
	assert.Equal(t, "t_block_center", tiles[4].Frame)
	assert.Equal(t, "t_block_bottom_right", tiles[8].Frame)
	assert.Equal(t, "blk_2_1", tiles[7].ID)
	assert.Equal(t, 128.0, tiles[7].Y)

	flat := Block(0, 0, 2, 1, "t", "f")
	assert.Equal(t, "t_horizontal_left", flat[0].Frame)
	assert.Equal(t, "t_horizontal_right", flat[1].Frame)
}

func TestSectionsCanonicalOrder(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, len(SectionOrder))
	for i, s := range sections {
		assert.Equal(t, SectionOrder[i], s.ID)
		assert.Equal(t, PageWidth, s.Width)
		assert.Equal(t, PageHeight, s.Height)
		assert.Equal(t, GroundY, s.GroundLevel)
		assert.Equal(t, 128.0, s.Entry.X)
		assert.Equal(t, EntryFall, s.Entry.Kind)
		assert.NotEmpty(t, s.NPCs)
	}
}

func TestHeroSectionLayout(t *testing.T) {
	hero := Sections()[0]
	require.Len(t, hero.Terrain, 6+2+3+2+2+1)
	assert.Equal(t, "hero_ground_0", hero.Terrain[0].ID)
	assert.Equal(t, 576.0, hero.Terrain[0].Y)

	frog := hero.NPCs[0]
	assert.Equal(t, 112.0, frog.X)
	assert.Equal(t, 352.0, frog.Y)
	require.NotNil(t, frog.Patrol)
	assert.Equal(t, 104.0, frog.Patrol.MinX)
	assert.Equal(t, 240.0, frog.Patrol.MaxX)
	assert.Len(t, frog.Dialogue, 3)
}

func TestContactHasLadder(t *testing.T) {
	contact := Sections()[4]
	require.Len(t, contact.Ladders, 1)
	assert.Equal(t, Ladder{ID: "contact_ladder", X: 32, TopY: 128, HeightTiles: 7}, contact.Ladders[0])
	assert.Equal(t, "https://github.com/pjhartwig", contact.NPCs[0].ExternalLink)
}

func TestSectionsAreFreshCopies(t *testing.T) {
	a := Sections()
	a[0].Terrain[0].X = 999
	b := Sections()
	assert.Equal(t, 0.0, b[0].Terrain[0].X)
}

func TestLoadSectionTMX(t *testing.T) {
	section, err := LoadSectionTMX(os.DirFS("testdata"), "lookout.tmx")
	require.NoError(t, err)

	assert.Equal(t, Contact, section.ID)
	assert.Equal(t, TerrainStone, section.TerrainType)
	assert.Equal(t, BackgroundClouds, section.BackgroundType)
	assert.Equal(t, "sections.contact.title", section.Title)
	assert.Equal(t, 384.0, section.Width)
	assert.Equal(t, 640.0, section.Height)
	assert.Equal(t, 576.0, section.GroundLevel)
	assert.Equal(t, EntryPoint{X: 128, Kind: EntryFall, Direction: Left}, section.Entry)

	require.Len(t, section.Terrain, 9)
	assert.Equal(t, TerrainTile{ID: "terrain_5_0", X: 0, Y: 320, Frame: "terrain_stone_horizontal_left", Solid: true}, section.Terrain[0])
	assert.False(t, section.Terrain[2].Solid, "passable tile")
	assert.Equal(t, "terrain_stone_horizontal_middle", section.Terrain[8].Frame)

	require.Len(t, section.Decorations, 1)
	assert.Equal(t, "tiles", section.Decorations[0].Sheet)

	require.Len(t, section.NPCs, 1)
	owl := section.NPCs[0]
	assert.Equal(t, []string{"npcs.contact.owl.line1", "npcs.contact.owl.line2"}, owl.Dialogue)
	require.NotNil(t, owl.Patrol)
	assert.Equal(t, PatrolRange{MinX: 8, MaxX: 80, Speed: 0.25}, *owl.Patrol)

	require.Len(t, section.Ladders, 1)
	assert.Equal(t, 7, section.Ladders[0].HeightTiles)
}

func TestLoadSectionTMXMissingFile(t *testing.T) {
	_, err := LoadSectionTMX(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestLoadSectionsDirAndOverride(t *testing.T) {
	loaded, err := LoadSectionsDir(os.DirFS("."), "testdata")
	require.NoError(t, err)
	require.Contains(t, loaded, Contact)

	merged, err := Override(Sections(), loaded)
	require.NoError(t, err)
	require.Len(t, merged, 5)
	assert.Equal(t, Hero, merged[0].ID)
	assert.Equal(t, BackgroundClouds, merged[4].BackgroundType)
	assert.Equal(t, Left, merged[4].Entry.Direction)
}

func TestOverrideRejectsUnknownIDs(t *testing.T) {
	_, err := Override(Sections(), map[SectionID]WorldSection{"basement": {ID: "basement"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basement")
}

func TestLoadFromDirectory(t *testing.T) {
	builtIn, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Sections(), builtIn)

	merged, err := Load("testdata")
	require.NoError(t, err)
	require.Len(t, merged, 5)
	assert.Equal(t, Left, merged[4].Entry.Direction)

	_, err = Load(t.TempDir())
	assert.Error(t, err, "a directory without maps is a mistake, not a no-op")
}
