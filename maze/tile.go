// File: tile.go
// Role: in-memory Cell and Grid implementations used by the generator,
// the CLI and tests.

package maze

import (
	"fmt"
	"math/rand"
)

// Tile is a concrete Cell with four dividers and their door colours.
type Tile struct {
	x, y     int
	dividers [4]Divider
	doors    [4]DoorColor
}

// GridX implements Cell.
func (t *Tile) GridX() int { return t.x }

// GridY implements Cell.
func (t *Tile) GridY() int { return t.y }

// DividerTowards returns the divider on side d; invalid directions are walls.
func (t *Tile) DividerTowards(d Direction) Divider {
	if !d.IsValid() {
		return Wall
	}

	return t.dividers[d]
}

// DoorColorTowards returns the door colour on side d, NoColor when there is
// no coloured door.
func (t *Tile) DoorColorTowards(d Direction) DoorColor {
	if !d.IsValid() || t.dividers[d] != ColoredDoor {
		return NoColor
	}

	return t.doors[d]
}

// TileGrid is a rectangular grid of Tiles stored row-major.
// Dividers shared by two tiles are always kept identical on both sides.
type TileGrid struct {
	width, height int
	cellSize      int
	tiles         []*Tile
}

// NewTileGrid returns a width×height grid with every divider a wall.
// cellSize is the pixel edge length of one cell.
func NewTileGrid(width, height, cellSize int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}
	tg := &TileGrid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		tiles:    make([]*Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tg.tiles[y*width+x] = &Tile{x: x, y: y}
		}
	}

	return tg, nil
}

// CellDimensionsX implements Grid; it is the width in cells.
func (tg *TileGrid) CellDimensionsX() int { return tg.width }

// CellDimensionsY implements Grid; it is the height in cells.
func (tg *TileGrid) CellDimensionsY() int { return tg.height }

// CellSize returns the pixel edge length of one cell.
func (tg *TileGrid) CellSize() int { return tg.cellSize }

// InBounds reports whether (x,y) lies within the grid.
func (tg *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < tg.width && y >= 0 && y < tg.height
}

// Tile returns the tile at (x,y), or nil outside the grid.
func (tg *TileGrid) Tile(x, y int) *Tile {
	if !tg.InBounds(x, y) {
		return nil
	}

	return tg.tiles[y*tg.width+x]
}

// CellAt implements Grid. The result is an untyped nil outside the grid.
func (tg *TileGrid) CellAt(x, y int) Cell {
	t := tg.Tile(x, y)
	if t == nil {
		return nil
	}

	return t
}

// RandomCell returns a uniformly chosen cell.
func (tg *TileGrid) RandomCell(rng *rand.Rand) Cell {
	return tg.tiles[rng.Intn(len(tg.tiles))]
}

// Carve opens the divider between (x,y) and its neighbour towards dir.
func (tg *TileGrid) Carve(x, y int, dir Direction) error {
	return tg.SetDivider(x, y, dir, Empty)
}

// SetDivider sets the divider between (x,y) and its neighbour towards dir on
// both sides. A ColoredDoor set this way has NoColor; see SetDoor.
func (tg *TileGrid) SetDivider(x, y int, dir Direction, d Divider) error {
	a, b, err := tg.pair(x, y, dir)
	if err != nil {
		return err
	}
	a.dividers[dir], b.dividers[dir.Opposite()] = d, d
	a.doors[dir], b.doors[dir.Opposite()] = NoColor, NoColor

	return nil
}

// SetDoor places a coloured door between (x,y) and its neighbour towards dir.
func (tg *TileGrid) SetDoor(x, y int, dir Direction, color DoorColor) error {
	a, b, err := tg.pair(x, y, dir)
	if err != nil {
		return err
	}
	a.dividers[dir], b.dividers[dir.Opposite()] = ColoredDoor, ColoredDoor
	a.doors[dir], b.doors[dir.Opposite()] = color, color

	return nil
}

// pair resolves (x,y) and its neighbour towards dir.
func (tg *TileGrid) pair(x, y int, dir Direction) (*Tile, *Tile, error) {
	if !dir.IsValid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadDirection, int(dir))
	}
	dx, dy := dir.Delta()
	a, b := tg.Tile(x, y), tg.Tile(x+dx, y+dy)
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("%w: (%d,%d) towards %s", ErrOutOfBounds, x, y, dir)
	}

	return a, b, nil
}
