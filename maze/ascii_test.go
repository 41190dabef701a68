package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/maze"
)

const doorLayout = `+-+-+-+
|   R |
+-+ + +
|     |
+-+-+-+
`

func TestParse_RoundTrip(t *testing.T) {
	tg, err := maze.ParseString(doorLayout, 16)
	require.NoError(t, err)
	assert.Equal(t, 3, tg.CellDimensionsX())
	assert.Equal(t, 2, tg.CellDimensionsY())
	assert.Equal(t, doorLayout, tg.String())

	assert.Equal(t, maze.Empty, tg.Tile(0, 0).DividerTowards(maze.East))
	assert.Equal(t, maze.ColoredDoor, tg.Tile(1, 0).DividerTowards(maze.East))
	assert.Equal(t, maze.Red, tg.Tile(2, 0).DoorColorTowards(maze.West))
	assert.Equal(t, maze.Wall, tg.Tile(0, 0).DividerTowards(maze.South))
	assert.Equal(t, maze.Empty, tg.Tile(1, 1).DividerTowards(maze.North))
}

func TestParse_AlternateGlyphs(t *testing.T) {
	tg, err := maze.Parse([]string{
		"#####",
		"#.D.#",
		"#####",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, maze.ColoredDoor, tg.Tile(0, 0).DividerTowards(maze.East))
	assert.Equal(t, maze.NoColor, tg.Tile(0, 0).DoorColorTowards(maze.East))
	assert.Equal(t, "+-+-+\n| D |\n+-+-+\n", tg.String())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"TooFewLines": {"+-+", "| |"},
		"EvenLines":   {"+-+", "| |", "+-+", "| |"},
		"EvenWidth":   {"+-+-", "|   ", "+-+-"},
		"Ragged":      {"+-+-+", "|   |", "+-+"},
		"BadGlyph":    {"+-+-+", "| ? |", "+-+-+"},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := maze.Parse(lines, 8)
			require.ErrorIs(t, err, maze.ErrBadLayout)
		})
	}

	_, err := maze.ParseString(doorLayout, 0)
	require.ErrorIs(t, err, maze.ErrBadCellSize)
}

func TestParse_CRLF(t *testing.T) {
	tg, err := maze.ParseString(strings.ReplaceAll(doorLayout, "\n", "\r\n"), 4)
	require.NoError(t, err)
	assert.Equal(t, doorLayout, tg.String())
}
