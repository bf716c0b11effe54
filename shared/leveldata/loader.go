package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadSectionTMX parses a section authored in Tiled. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
//
// Layout expected in the map:
//   - tile layer "terrain": every non-empty cell becomes a TerrainTile whose
//     frame comes from the tileset tile's "frame" property ("passable" marks
//     it non-solid)
//   - object group "Section": one object carrying id, terrainType,
//     backgroundType, title, entryKind and entryDirection; its X is the
//     entry X and its Y the ground level
//   - object groups "Decorations", "NPCs" and "Ladders"
func LoadSectionTMX(fsys fs.FS, tmxPath string) (*WorldSection, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	section := &WorldSection{
		Width:  float64(levelMap.Width) * tileW,
		Height: float64(levelMap.Height) * tileH,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != "terrain" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				frame := ""
				solid := true
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					frame = tilesetTile.Properties.GetString("frame")
					solid = !tilesetTile.Properties.GetBool("passable")
				}

				section.Terrain = append(section.Terrain, TerrainTile{
					ID:    fmt.Sprintf("%s_%d_%d", layer.Name, y, x),
					X:     float64(x) * tileW,
					Y:     float64(y) * tileH,
					Frame: frame,
					Solid: solid,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Section":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			section.ID = SectionID(o.Properties.GetString("id"))
			section.TerrainType = TerrainType(o.Properties.GetString("terrainType"))
			section.BackgroundType = BackgroundType(o.Properties.GetString("backgroundType"))
			section.Title = o.Properties.GetString("title")
			section.GroundLevel = o.Y
			section.Entry = EntryPoint{
				X:         o.X,
				Kind:      EntryKind(o.Properties.GetString("entryKind")),
				Direction: Direction(o.Properties.GetString("entryDirection")),
			}
		case "Decorations":
			for _, o := range og.Objects {
				sheet := o.Properties.GetString("sheet")
				if sheet == "" {
					sheet = "tiles"
				}
				section.Decorations = append(section.Decorations, Decoration{
					ID:    o.Name,
					X:     o.X,
					Y:     o.Y,
					Frame: o.Properties.GetString("frame"),
					Sheet: sheet,
				})
			}
		case "NPCs":
			for _, o := range og.Objects {
				npc := NPC{
					ID:           o.Name,
					X:            o.X,
					Y:            o.Y,
					Sprite:       o.Properties.GetString("sprite"),
					Name:         o.Properties.GetString("name"),
					ExternalLink: o.Properties.GetString("externalLink"),
				}
				if lines := o.Properties.GetString("dialogue"); lines != "" {
					npc.Dialogue = strings.Split(lines, "|")
				}
				if speed := o.Properties.GetFloat("patrolSpeed"); speed > 0 {
					npc.Patrol = &PatrolRange{
						MinX:  o.Properties.GetFloat("patrolMinX"),
						MaxX:  o.Properties.GetFloat("patrolMaxX"),
						Speed: speed,
					}
				}
				section.NPCs = append(section.NPCs, npc)
			}
		case "Ladders":
			for _, o := range og.Objects {
				section.Ladders = append(section.Ladders, Ladder{
					ID:          o.Name,
					X:           o.X,
					TopY:        o.Y,
					HeightTiles: int(o.Height / tileH),
				})
			}
		}
	}

	if section.ID == "" {
		return nil, fmt.Errorf("load TMX %s: missing Section object with an id", tmxPath)
	}
	if section.Title == "" {
		section.Title = "sections." + string(section.ID) + ".title"
	}
	return section, nil
}

// LoadSectionsDir loads every .tmx file in dir, keyed by section id.
func LoadSectionsDir(fsys fs.FS, dir string) (map[SectionID]WorldSection, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	sections := make(map[SectionID]WorldSection, len(matches))
	for _, path := range matches {
		s, err := LoadSectionTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		if _, dup := sections[s.ID]; dup {
			return nil, fmt.Errorf("section %q defined twice (second in %s)", s.ID, filepath.Base(path))
		}
		sections[s.ID] = *s
	}
	return sections, nil
}

// Override replaces sections in base with same-id entries from overrides,
// keeping the base order. Overrides with unknown ids are returned as an
// error since the stacking order is fixed.
func Override(base []WorldSection, overrides map[SectionID]WorldSection) ([]WorldSection, error) {
	out := make([]WorldSection, len(base))
	copy(out, base)

	used := 0
	for i := range out {
		if s, ok := overrides[out[i].ID]; ok {
			out[i] = s
			used++
		}
	}
	if used != len(overrides) {
		var unknown []string
		for id := range overrides {
			if !hasSection(base, id) {
				unknown = append(unknown, string(id))
			}
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown section ids: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

func hasSection(sections []WorldSection, id SectionID) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Load returns the built-in sections with any .tmx files under dir laid
// over them. An empty dir returns the built-in sections unchanged.
func Load(dir string) ([]WorldSection, error) {
	base := Sections()
	if dir == "" {
		return base, nil
	}
	overrides, err := LoadSectionsDir(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	return Override(base, overrides)
}
