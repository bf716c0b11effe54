package tower

import (
	"sort"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/physics"
	"github.com/solarlune/resolv"
)

const tagSolid = "solid"

// broadphase indexes the terrain colliders in a resolv space so the player
// only resolves against nearby tiles. The space origin sits at the top of
// the tower: world Y is shifted down by the height of every section above
// the first.
type broadphase struct {
	space     *resolv.Space
	probe     *resolv.Object
	colliders []physics.AABB
	shiftY    float64
}

func newBroadphase(colliders []physics.AABB, sectionHeight float64, sections int) *broadphase {
	cell := cfg.Collision.BroadphaseCell
	width := int(cfg.Bounds.MaxX - cfg.Bounds.MinX)
	height := int(sectionHeight * float64(sections))

	bp := &broadphase{
		space:     resolv.NewSpace(width, height, cell, cell),
		colliders: colliders,
		shiftY:    sectionHeight * float64(sections-1),
	}

	for i, c := range colliders {
		obj := resolv.NewObject(c.X, c.Y+bp.shiftY, c.Width, c.Height, tagSolid)
		obj.Data = i
		bp.space.Add(obj)
	}

	bp.probe = resolv.NewObject(0, 0, 1, 1, "probe")
	bp.space.Add(bp.probe)
	return bp
}

// near returns the colliders sharing a cell with area grown by two tiles.
// Not safe for concurrent use: the probe object is reused between calls.
func (bp *broadphase) near(area physics.AABB) []physics.AABB {
	margin := 2 * cfg.Physics.TileSize

	bp.probe.X = area.X - margin
	bp.probe.Y = area.Y - margin + bp.shiftY
	bp.probe.W = area.Width + margin*2
	bp.probe.H = area.Height + margin*2
	bp.probe.Update()

	check := bp.probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	solids := check.ObjectsByTags(tagSolid)
	indices := make([]int, 0, len(solids))
	for _, obj := range solids {
		indices = append(indices, obj.Data.(int))
	}
	sort.Ints(indices)

	out := make([]physics.AABB, 0, len(indices))
	for i, idx := range indices {
		if i > 0 && indices[i-1] == idx {
			continue
		}
		out = append(out, bp.colliders[idx])
	}
	return out
}
