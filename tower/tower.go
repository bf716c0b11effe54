// Package tower stacks the authored sections into one vertical world. The
// first section sits at Y offset 0 and every following section is placed one
// section height above the previous one.
package tower

import (
	"fmt"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/physics"
	"github.com/automoto/tower-climb/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Tower is read-only after New apart from the current-section marker. The
// aggregated slices it hands out are shared snapshots and must not be
// modified by callers.
type Tower struct {
	sections []leveldata.WorldSection
	index    map[leveldata.SectionID]int
	height   float64

	terrain         []leveldata.TerrainTile
	colliders       []physics.AABB
	decorations     []leveldata.Decoration
	npcs            []leveldata.NPC
	ladders         []leveldata.Ladder
	ladderColliders []physics.AABB

	broadphase *broadphase
	current    leveldata.SectionID
}

// New builds a tower from sections given bottom to top. Duplicate ids or an
// empty list are programmer errors.
func New(sections []leveldata.WorldSection) *Tower {
	if len(sections) == 0 {
		panic("tower: no sections")
	}

	t := &Tower{
		sections: sections,
		index:    make(map[leveldata.SectionID]int, len(sections)),
		height:   cfg.Tower.SectionHeight,
		current:  sections[0].ID,
	}
	for i, s := range sections {
		if _, dup := t.index[s.ID]; dup {
			panic(fmt.Sprintf("tower: duplicate section %q", s.ID))
		}
		t.index[s.ID] = i
	}

	t.aggregate()
	t.broadphase = newBroadphase(t.colliders, t.height, len(sections))
	return t
}

// NewDefault stacks the five built-in sections.
func NewDefault() *Tower {
	return New(leveldata.Sections())
}

func (t *Tower) aggregate() {
	tile := cfg.Physics.TileSize

	for _, s := range t.sections {
		offset := t.SectionOffset(s.ID)
		prefix := string(s.ID) + "_"

		for _, tt := range s.Terrain {
			tt.ID = prefix + tt.ID
			tt.Y += offset
			t.terrain = append(t.terrain, tt)
			if tt.Solid {
				t.colliders = append(t.colliders, physics.AABB{X: tt.X, Y: tt.Y, Width: tile, Height: tile})
			}
		}
		for _, d := range s.Decorations {
			d.ID = prefix + d.ID
			d.Y += offset
			t.decorations = append(t.decorations, d)
		}
		for _, n := range s.NPCs {
			n.ID = prefix + n.ID
			n.Y += offset
			t.npcs = append(t.npcs, n)
		}
		for _, l := range s.Ladders {
			l.ID = prefix + l.ID
			l.TopY += offset
			t.ladders = append(t.ladders, l)
			t.ladderColliders = append(t.ladderColliders, physics.AABB{
				X:      l.X,
				Y:      l.TopY,
				Width:  tile,
				Height: float64(l.HeightTiles) * tile,
			})
		}
	}
}

func (t *Tower) SectionCount() int          { return len(t.sections) }
func (t *Tower) SectionHeight() float64     { return t.height }
func (t *Tower) TotalHeight() float64       { return t.height * float64(len(t.sections)) }
func (t *Tower) PageWidth() float64         { return t.sections[0].Width }
func (t *Tower) First() leveldata.SectionID { return t.sections[0].ID }

// Order returns section ids bottom to top.
func (t *Tower) Order() []leveldata.SectionID {
	ids := make([]leveldata.SectionID, len(t.sections))
	for i, s := range t.sections {
		ids[i] = s.ID
	}
	return ids
}

// SectionIndex panics on ids that are not part of the tower.
func (t *Tower) SectionIndex(id leveldata.SectionID) int {
	i, ok := t.index[id]
	if !ok {
		panic(fmt.Sprintf("tower: unknown section %q", id))
	}
	return i
}

func (t *Tower) Section(id leveldata.SectionID) leveldata.WorldSection {
	return t.sections[t.SectionIndex(id)]
}

// SectionOffset is the Y shift applied to a section's local coordinates.
func (t *Tower) SectionOffset(id leveldata.SectionID) float64 {
	return -t.height * float64(t.SectionIndex(id))
}

func (t *Tower) Terrain() []leveldata.TerrainTile    { return t.terrain }
func (t *Tower) Colliders() []physics.AABB           { return t.colliders }
func (t *Tower) Decorations() []leveldata.Decoration { return t.decorations }
func (t *Tower) NPCs() []leveldata.NPC               { return t.npcs }
func (t *Tower) Ladders() []leveldata.Ladder         { return t.ladders }
func (t *Tower) LadderColliders() []physics.AABB     { return t.ladderColliders }

// CollidersNear returns the solid tiles around area, in the same relative
// order as Colliders, so resolving against it gives the same result as
// resolving against the full list.
func (t *Tower) CollidersNear(area physics.AABB) []physics.AABB {
	return t.broadphase.near(area)
}

// SectionAtY maps a world Y to the section shown in the UI. The label only
// flips once the player is SectionLookahead pixels past a boundary, which
// keeps it from flickering while standing on the seam.
func (t *Tower) SectionAtY(y float64) leveldata.SectionID {
	if y > 0 {
		return t.sections[0].ID
	}

	delay := t.height - cfg.Tower.SectionLookahead
	last := len(t.sections) - 1
	for i := 0; i < last; i++ {
		if y > -t.height*float64(i+1)+delay {
			return t.sections[i].ID
		}
	}
	return t.sections[last].ID
}

func (t *Tower) IsMovingUp(from, to leveldata.SectionID) bool {
	return t.SectionIndex(to) > t.SectionIndex(from)
}

// SpawnPoint is where the player reappears after falling out: the first
// section's entry, lifted above its ground.
func (t *Tower) SpawnPoint() dmath.Vec2 {
	first := t.sections[0]
	return dmath.Vec2{X: first.Entry.X, Y: first.GroundLevel - cfg.Tower.SpawnLift}
}

// SpawnPointForSection is the entry X and the world-space ground level.
func (t *Tower) SpawnPointForSection(id leveldata.SectionID) dmath.Vec2 {
	s := t.Section(id)
	return dmath.Vec2{X: s.Entry.X, Y: s.GroundLevel + t.SectionOffset(id)}
}

// NPCPositionForSection is the first NPC's world position, falling back to
// the section spawn point when it has none.
func (t *Tower) NPCPositionForSection(id leveldata.SectionID) dmath.Vec2 {
	s := t.Section(id)
	if len(s.NPCs) == 0 {
		return t.SpawnPointForSection(id)
	}
	return dmath.Vec2{X: s.NPCs[0].X, Y: s.NPCs[0].Y + t.SectionOffset(id)}
}

func (t *Tower) GroundLevel(id leveldata.SectionID) float64 {
	return t.Section(id).GroundLevel + t.SectionOffset(id)
}

func (t *Tower) SectionTitle(id leveldata.SectionID) string {
	return t.Section(id).Title
}

func (t *Tower) TerrainType(id leveldata.SectionID) leveldata.TerrainType {
	return t.Section(id).TerrainType
}

func (t *Tower) BackgroundType(id leveldata.SectionID) leveldata.BackgroundType {
	return t.Section(id).BackgroundType
}

// IsBelowTower reports a fall-out: more than FallOutMargin under the first
// section's ground.
func (t *Tower) IsBelowTower(y float64) bool {
	return y > t.sections[0].GroundLevel+cfg.Tower.FallOutMargin
}

func (t *Tower) CurrentSection() leveldata.SectionID { return t.current }

func (t *Tower) UpdateCurrentSection(y float64) leveldata.SectionID {
	t.current = t.SectionAtY(y)
	return t.current
}

func (t *Tower) ResetCurrentSection() {
	t.current = t.sections[0].ID
}

// SetCurrentSection is used by teleports, which bypass the Y lookup.
func (t *Tower) SetCurrentSection(id leveldata.SectionID) {
	t.SectionIndex(id)
	t.current = id
}
