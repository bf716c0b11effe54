package tower

import (
	"testing"

	"github.com/automoto/tower-climb/physics"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionOffsets(t *testing.T) {
	tw := NewDefault()
	assert.Equal(t, 0.0, tw.SectionOffset(leveldata.Hero))
	assert.Equal(t, -640.0, tw.SectionOffset(leveldata.About))
	assert.Equal(t, -2560.0, tw.SectionOffset(leveldata.Contact))
	assert.Equal(t, 3200.0, tw.TotalHeight())
}

func TestUnknownSectionPanics(t *testing.T) {
	tw := NewDefault()
	assert.Panics(t, func() { tw.SectionOffset("basement") })
	assert.Panics(t, func() { tw.SectionIndex("") })
}

func TestNewRejectsDuplicates(t *testing.T) {
	s := leveldata.Sections()
	assert.Panics(t, func() { New([]leveldata.WorldSection{s[0], s[0]}) })
	assert.Panics(t, func() { New(nil) })
}

func TestAggregationIsIdempotent(t *testing.T) {
	a := New(leveldata.Sections())
	b := New(leveldata.Sections())
	assert.Equal(t, a.Terrain(), b.Terrain())
	assert.Equal(t, a.Terrain(), a.Terrain())
	assert.Equal(t, a.Colliders(), b.Colliders())
	assert.Equal(t, a.NPCs(), b.NPCs())
}

func TestAggregatedIDsAndOffsets(t *testing.T) {
	tw := NewDefault()

	terrain := tw.Terrain()
	require.NotEmpty(t, terrain)
	assert.Equal(t, "hero_hero_ground_0", terrain[0].ID)
	assert.Equal(t, 576.0, terrain[0].Y)

	last := terrain[len(terrain)-1]
	assert.Equal(t, "contact_contact_victory_3", last.ID)
	assert.Equal(t, 128.0-2560.0, last.Y)

	ladders := tw.Ladders()
	require.Len(t, ladders, 1)
	assert.Equal(t, "contact_contact_ladder", ladders[0].ID)
	assert.Equal(t, 128.0-2560.0, ladders[0].TopY)

	lc := tw.LadderColliders()
	require.Len(t, lc, 1)
	assert.Equal(t, physics.AABB{X: 32, Y: -2432, Width: 64, Height: 448}, lc[0])

	npcs := tw.NPCs()
	require.Len(t, npcs, 5)
	assert.Equal(t, "about_about_ladybug", npcs[1].ID)
	assert.Equal(t, 192.0-640.0, npcs[1].Y)

	assert.Len(t, tw.Decorations(), 4+3+2+1+2)
}

func TestCollidersSkipNonSolid(t *testing.T) {
	s := leveldata.Sections()
	s[0].Terrain[0].Solid = false
	tw := New(s)
	assert.Len(t, tw.Colliders(), len(tw.Terrain())-1)
	assert.Equal(t, physics.AABB{X: 64, Y: 576, Width: 64, Height: 64}, tw.Colliders()[0])
}

func TestSectionAtYHysteresis(t *testing.T) {
	tw := NewDefault()

	assert.Equal(t, leveldata.Hero, tw.SectionAtY(500))
	assert.Equal(t, leveldata.Hero, tw.SectionAtY(0))
	assert.Equal(t, leveldata.Hero, tw.SectionAtY(-1))
	assert.Equal(t, leveldata.Hero, tw.SectionAtY(-59))
	assert.Equal(t, leveldata.About, tw.SectionAtY(-61))

	// Boundary between about and skills sits at -640
	assert.Equal(t, leveldata.About, tw.SectionAtY(-640))
	assert.Equal(t, leveldata.About, tw.SectionAtY(-641))
	assert.Equal(t, leveldata.Skills, tw.SectionAtY(-640-640+580-1))

	assert.Equal(t, leveldata.Projects, tw.SectionAtY(-1500))
	assert.Equal(t, leveldata.Contact, tw.SectionAtY(-1981))
	assert.Equal(t, leveldata.Contact, tw.SectionAtY(-5000))
}

func TestIsMovingUp(t *testing.T) {
	tw := NewDefault()
	assert.True(t, tw.IsMovingUp(leveldata.Hero, leveldata.About))
	assert.False(t, tw.IsMovingUp(leveldata.Skills, leveldata.About))
	assert.False(t, tw.IsMovingUp(leveldata.Skills, leveldata.Skills))
}

func TestSpawnPoints(t *testing.T) {
	tw := NewDefault()

	spawn := tw.SpawnPoint()
	assert.Equal(t, 128.0, spawn.X)
	assert.Equal(t, 480.0, spawn.Y)

	about := tw.SpawnPointForSection(leveldata.About)
	assert.Equal(t, 128.0, about.X)
	assert.Equal(t, 576.0-640.0, about.Y)

	npc := tw.NPCPositionForSection(leveldata.Skills)
	assert.Equal(t, 144.0, npc.X)
	assert.Equal(t, 192.0-1280.0, npc.Y)

	assert.Equal(t, 576.0-2560.0, tw.GroundLevel(leveldata.Contact))
}

func TestNPCPositionFallsBackToSpawn(t *testing.T) {
	s := leveldata.Sections()
	s[1].NPCs = nil
	tw := New(s)
	assert.Equal(t, tw.SpawnPointForSection(leveldata.About), tw.NPCPositionForSection(leveldata.About))
}

func TestSectionMetadata(t *testing.T) {
	tw := NewDefault()
	assert.Equal(t, "sections.projects.title", tw.SectionTitle(leveldata.Projects))
	assert.Equal(t, leveldata.TerrainPurple, tw.TerrainType(leveldata.Skills))
	assert.Equal(t, leveldata.BackgroundClouds, tw.BackgroundType(leveldata.Contact))
	assert.Equal(t, 384.0, tw.PageWidth())
	assert.Equal(t, 5, tw.SectionCount())
}

func TestIsBelowTower(t *testing.T) {
	tw := NewDefault()
	assert.False(t, tw.IsBelowTower(704))
	assert.True(t, tw.IsBelowTower(704.5))
}

func TestCurrentSectionTracking(t *testing.T) {
	tw := NewDefault()
	assert.Equal(t, leveldata.Hero, tw.CurrentSection())
	assert.Equal(t, leveldata.Skills, tw.UpdateCurrentSection(-1000))
	assert.Equal(t, leveldata.Skills, tw.CurrentSection())

	tw.SetCurrentSection(leveldata.Contact)
	assert.Equal(t, leveldata.Contact, tw.CurrentSection())
	tw.ResetCurrentSection()
	assert.Equal(t, leveldata.Hero, tw.CurrentSection())
}

func TestCollidersNearIsOrderedSubset(t *testing.T) {
	tw := NewDefault()
	all := tw.Colliders()

	area := physics.AABB{X: 152, Y: 496, Width: 48, Height: 80}
	near := tw.CollidersNear(area)
	require.NotEmpty(t, near)
	assert.Less(t, len(near), len(all))

	// Every returned collider exists in the full list, in the same order
	j := 0
	for _, c := range near {
		for j < len(all) && all[j] != c {
			j++
		}
		require.Less(t, j, len(all), "collider %v not in full list order", c)
		j++
	}

	// Nothing overlapping the grown area is missed
	grown := physics.AABB{X: area.X - 64, Y: area.Y - 64, Width: area.Width + 128, Height: area.Height + 128}
	for _, c := range all {
		if c.Overlaps(grown) {
			assert.Contains(t, near, c)
		}
	}
}

func TestCollidersNearMatchesFullResolution(t *testing.T) {
	tw := NewDefault()

	starts := []physics.AABB{
		{X: 152, Y: 470, Width: 48, Height: 80},
		{X: 40, Y: 380, Width: 48, Height: 80},
		{X: 250, Y: -700, Width: 48, Height: 80},
		{X: 10, Y: -2450, Width: 48, Height: 80},
	}
	for _, s := range starts {
		full := physics.NewBody(s.X, s.Y, s.Width, s.Height)
		full.Velocity.Y = 8
		near := physics.NewBody(s.X, s.Y, s.Width, s.Height)
		near.Velocity.Y = 8

		for i := 0; i < 30; i++ {
			physics.ApplyGravity(full)
			physics.UpdatePosition(full)
			physics.ResolveTerrainCollision(full, tw.Colliders())

			physics.ApplyGravity(near)
			physics.UpdatePosition(near)
			physics.ResolveTerrainCollision(near, tw.CollidersNear(near.Bounds))
		}
		assert.Equal(t, full.Position, near.Position)
		assert.Equal(t, full.Grounded, near.Grounded)
	}
}

func TestCollidersNearOutsideTower(t *testing.T) {
	tw := NewDefault()
	assert.Empty(t, tw.CollidersNear(physics.AABB{X: 100, Y: 5000, Width: 48, Height: 80}))
}
