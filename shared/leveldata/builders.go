package leveldata

import "fmt"

// Page geometry shared by every section
const (
	Tile       = 64.0
	PageWidth  = 384.0 // 6 tiles
	PageHeight = 640.0 // 10 tiles
	GroundY    = PageHeight - Tile
)

// Vertical platform rows, counted up from the ground
const (
	L1 = GroundY - Tile*(iota+1)
	L2
	L3
	L4
	L5
	L6
	L7
	L8
)

// Flush marks which ends of a terrain row touch the page edge and so get no
// border frame.
type Flush int

const (
	FlushNone Flush = iota
	FlushLeft
	FlushRight
	FlushBoth
)

// Terrain builds a horizontal row of solid tiles. Frames are named
// <prefix>_horizontal_left/middle/right; ids are <idPrefix>_<i>.
func Terrain(startX float64, widthTiles int, y float64, prefix, idPrefix string, flush Flush) []TerrainTile {
	flushLeft := flush == FlushLeft || flush == FlushBoth
	flushRight := flush == FlushRight || flush == FlushBoth

	tiles := make([]TerrainTile, 0, widthTiles)
	for i := 0; i < widthTiles; i++ {
		suffix := "middle"
		switch {
		case widthTiles == 1:
			// A lone tile shows the border on its open side
			if flushLeft && !flushRight {
				suffix = "right"
			} else if flushRight && !flushLeft {
				suffix = "left"
			}
		case i == 0:
			if !flushLeft {
				suffix = "left"
			}
		case i == widthTiles-1:
			if !flushRight {
				suffix = "right"
			}
		}

		tiles = append(tiles, TerrainTile{
			ID:    fmt.Sprintf("%s_%d", idPrefix, i),
			X:     startX + float64(i)*Tile,
			Y:     y,
			Frame: fmt.Sprintf("%s_horizontal_%s", prefix, suffix),
			Solid: true,
		})
	}
	return tiles
}

// Block builds a filled rectangle of solid tiles. Ids are
// <idPrefix>_<row>_<col>.
func Block(startX, startY float64, widthTiles, heightTiles int, prefix, idPrefix string) []TerrainTile {
	tiles := make([]TerrainTile, 0, widthTiles*heightTiles)
	for row := 0; row < heightTiles; row++ {
		for col := 0; col < widthTiles; col++ {
			tiles = append(tiles, TerrainTile{
				ID:    fmt.Sprintf("%s_%d_%d", idPrefix, row, col),
				X:     startX + float64(col)*Tile,
				Y:     startY + float64(row)*Tile,
				Frame: prefix + "_" + blockFrame(row, col, widthTiles, heightTiles),
				Solid: true,
			})
		}
	}
	return tiles
}

func blockFrame(row, col, widthTiles, heightTiles int) string {
	top, bottom := row == 0, row == heightTiles-1
	left, right := col == 0, col == widthTiles-1

	if heightTiles == 1 {
		switch {
		case widthTiles == 1:
			return "horizontal_middle"
		case left:
			return "horizontal_left"
		case right:
			return "horizontal_right"
		}
		return "horizontal_middle"
	}

	switch {
	case top && left:
		return "block_top_left"
	case top && right:
		return "block_top_right"
	case top:
		return "block_top"
	case bottom && left:
		return "block_bottom_left"
	case bottom && right:
		return "block_bottom_right"
	case bottom:
		return "block_bottom"
	case left:
		return "block_left"
	case right:
		return "block_right"
	}
	return "block_center"
}

func concat(rows ...[]TerrainTile) []TerrainTile {
	var out []TerrainTile
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func dialogue(section, creature string) []string {
	return []string{
		fmt.Sprintf("npcs.%s.%s.line1", section, creature),
		fmt.Sprintf("npcs.%s.%s.line2", section, creature),
		fmt.Sprintf("npcs.%s.%s.line3", section, creature),
	}
}
