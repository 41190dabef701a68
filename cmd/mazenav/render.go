package main

import (
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/mazenav/maze"
)

var (
	styleWall = color.Style{color.FgGray}
	stylePath = color.Style{color.FgGreen, color.OpBold}
	styleEnds = color.Style{color.FgYellow, color.OpBold}
	doorStyle = map[byte]color.Style{
		'R': {color.FgRed, color.OpBold},
		'G': {color.FgGreen, color.OpBold},
		'B': {color.FgBlue, color.OpBold},
		'Y': {color.FgYellow, color.OpBold},
		'D': {color.FgMagenta, color.OpBold},
	}
)

// render draws tg with path marked: 'S' and 'E' on the endpoints, '*' on
// the cells between, '.' on the gaps the path crosses.
func render(tg *maze.TileGrid, path []maze.Point, colored bool) string {
	lines := tg.Lines()
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	for i, p := range path {
		mark := byte('*')
		switch {
		case i == 0:
			mark = 'S'
		case i == len(path)-1:
			mark = 'E'
		}
		rows[2*p.Y+1][2*p.X+1] = mark
		if i > 0 {
			q := path[i-1]
			// The gap between two cells sits at the sum of their positions.
			gy, gx := p.Y+q.Y+1, p.X+q.X+1
			if rows[gy][gx] == ' ' {
				rows[gy][gx] = '.'
			}
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		if !colored {
			sb.Write(r)
			sb.WriteByte('\n')
			continue
		}
		for _, ch := range r {
			sb.WriteString(paint(ch))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func paint(ch byte) string {
	s := string(ch)
	switch ch {
	case '+', '-', '|':
		return styleWall.Sprint(s)
	case '*', '.':
		return stylePath.Sprint(s)
	case 'S', 'E':
		return styleEnds.Sprint(s)
	}
	if st, ok := doorStyle[ch]; ok {
		return st.Sprint(s)
	}

	return s
}
