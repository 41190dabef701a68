// File: ascii.go
// Role: text layout codec for TileGrid.
//
// A w×h grid is drawn as 2h+1 lines of 2w+1 characters. Cell (x,y) sits at
// column 2x+1 of line 2y+1; the character right of it is its East divider
// and the one below it its South divider. Outer boundary characters are
// decorative and ignored by Parse.
//
//	+-+-+-+
//	|   R |
//	+-+ + +
//	|     |
//	+-+-+-+
//
// Divider characters:
//
//	' ' '.'          Empty
//	'|' '-' '+' '#'  Wall
//	'R' 'G' 'B' 'Y'  ColoredDoor of that colour
//	'D'              ColoredDoor without colour

package maze

import (
	"fmt"
	"strings"
)

var doorGlyphs = map[byte]DoorColor{
	'D': NoColor,
	'R': Red,
	'G': Green,
	'B': Blue,
	'Y': Yellow,
}

// ParseString splits s into lines and calls Parse.
func ParseString(s string, cellSize int) (*TileGrid, error) {
	s = strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	return Parse(strings.Split(s, "\n"), cellSize)
}

// Parse reads a TileGrid from its text layout.
func Parse(lines []string, cellSize int) (*TileGrid, error) {
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd number of lines ≥ 3, got %d", ErrBadLayout, len(lines))
	}
	cols := len(lines[0])
	if cols < 3 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd line width ≥ 3, got %d", ErrBadLayout, cols)
	}
	for i, l := range lines {
		if len(l) != cols {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrBadLayout, i+1, len(l), cols)
		}
	}

	w, h := cols/2, len(lines)/2
	tg, err := NewTileGrid(w, h, cellSize)
	if err != nil {
		return nil, err
	}

	set := func(x, y int, dir Direction, ch byte, line, col int) error {
		if ch == ' ' || ch == '.' {
			return tg.SetDivider(x, y, dir, Empty)
		}
		if color, ok := doorGlyphs[ch]; ok {
			return tg.SetDoor(x, y, dir, color)
		}
		switch ch {
		case '|', '-', '+', '#':
			return nil // already a wall
		}

		return fmt.Errorf("%w: unexpected %q at line %d column %d", ErrBadLayout, ch, line+1, col+1)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				row, col := 2*y+1, 2*x+2
				if err := set(x, y, East, lines[row][col], row, col); err != nil {
					return nil, err
				}
			}
			if y+1 < h {
				row, col := 2*y+2, 2*x+1
				if err := set(x, y, South, lines[row][col], row, col); err != nil {
					return nil, err
				}
			}
		}
	}

	return tg, nil
}

// Lines renders the grid in the layout Parse reads.
func (tg *TileGrid) Lines() []string {
	rows := make([][]byte, 2*tg.height+1)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(" ", 2*tg.width+1))
	}
	for i := 0; i < len(rows); i += 2 {
		for j := 0; j < len(rows[i]); j += 2 {
			rows[i][j] = '+'
		}
	}
	for x := 0; x < tg.width; x++ {
		rows[0][2*x+1] = '-'
		rows[2*tg.height][2*x+1] = '-'
	}
	for y := 0; y < tg.height; y++ {
		rows[2*y+1][0] = '|'
		rows[2*y+1][2*tg.width] = '|'
	}

	for y := 0; y < tg.height; y++ {
		for x := 0; x < tg.width; x++ {
			t := tg.Tile(x, y)
			if x+1 < tg.width {
				rows[2*y+1][2*x+2] = glyph(t, East, '|')
			}
			if y+1 < tg.height {
				rows[2*y+2][2*x+1] = glyph(t, South, '-')
			}
		}
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}

	return out
}

// String renders the grid, one line per row, newline terminated.
func (tg *TileGrid) String() string {
	return strings.Join(tg.Lines(), "\n") + "\n"
}

func glyph(t *Tile, dir Direction, wall byte) byte {
	switch t.DividerTowards(dir) {
	case Empty:
		return ' '
	case ColoredDoor:
		switch t.DoorColorTowards(dir) {
		case Red:
			return 'R'
		case Green:
			return 'G'
		case Blue:
			return 'B'
		case Yellow:
			return 'Y'
		default:
			return 'D'
		}
	default:
		return wall
	}
}
