package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/maze"
)

func TestDirection(t *testing.T) {
	for _, d := range maze.AllDirections() {
		assert.True(t, d.IsValid())
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox, d.String())
		assert.Equal(t, 0, dy+oy, d.String())
	}
	dx, dy := maze.South.Delta()
	assert.Equal(t, [2]int{0, 1}, [2]int{dx, dy}, "y grows southwards")
	assert.False(t, maze.Direction(7).IsValid())
	assert.Equal(t, "Unknown", maze.Direction(-1).String())
}

func TestNewTileGrid(t *testing.T) {
	_, err := maze.NewTileGrid(0, 3, 16)
	require.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.NewTileGrid(3, 3, 0)
	require.ErrorIs(t, err, maze.ErrBadCellSize)

	tg, err := maze.NewTileGrid(4, 3, 16)
	require.NoError(t, err)
	assert.Equal(t, 4, tg.CellDimensionsX())
	assert.Equal(t, 3, tg.CellDimensionsY())
	assert.Equal(t, 16, tg.CellSize())

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := tg.CellAt(x, y)
			require.NotNil(t, c)
			assert.Equal(t, x, c.GridX())
			assert.Equal(t, y, c.GridY())
			for _, d := range maze.AllDirections() {
				assert.Equal(t, maze.Wall, c.DividerTowards(d))
			}
		}
	}
	assert.Nil(t, tg.CellAt(4, 0))
	assert.Nil(t, tg.CellAt(0, -1))
	assert.Nil(t, tg.Tile(-1, 0))
}

func TestTileGrid_DividersStayConsistent(t *testing.T) {
	tg, err := maze.NewTileGrid(3, 3, 8)
	require.NoError(t, err)

	require.NoError(t, tg.Carve(1, 1, maze.North))
	assert.Equal(t, maze.Empty, tg.Tile(1, 1).DividerTowards(maze.North))
	assert.Equal(t, maze.Empty, tg.Tile(1, 0).DividerTowards(maze.South))

	require.NoError(t, tg.SetDoor(1, 1, maze.East, maze.Blue))
	assert.Equal(t, maze.ColoredDoor, tg.Tile(2, 1).DividerTowards(maze.West))
	assert.Equal(t, maze.Blue, tg.Tile(2, 1).DoorColorTowards(maze.West))
	assert.Equal(t, maze.Blue, tg.Tile(1, 1).DoorColorTowards(maze.East))

	require.NoError(t, tg.SetDivider(2, 1, maze.West, maze.Wall))
	assert.Equal(t, maze.Wall, tg.Tile(1, 1).DividerTowards(maze.East))
	assert.Equal(t, maze.NoColor, tg.Tile(1, 1).DoorColorTowards(maze.East))

	require.ErrorIs(t, tg.Carve(0, 0, maze.West), maze.ErrOutOfBounds)
	require.ErrorIs(t, tg.Carve(2, 2, maze.South), maze.ErrOutOfBounds)
	require.ErrorIs(t, tg.Carve(1, 1, maze.Direction(9)), maze.ErrBadDirection)
	assert.Equal(t, maze.Wall, tg.Tile(1, 1).DividerTowards(maze.Direction(9)))
}

func TestTileGrid_RandomCell(t *testing.T) {
	tg, err := maze.NewTileGrid(5, 4, 8)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	seen := map[maze.Point]bool{}
	for i := 0; i < 500; i++ {
		c := tg.RandomCell(rng)
		require.NotNil(t, c)
		require.Same(t, tg.CellAt(c.GridX(), c.GridY()), c)
		seen[maze.Point{X: c.GridX(), Y: c.GridY()}] = true
	}
	assert.Len(t, seen, 20, "every cell should come up in 500 draws")
}

func TestParseDoorColor(t *testing.T) {
	for _, c := range []maze.DoorColor{maze.Red, maze.Green, maze.Blue, maze.Yellow} {
		got, err := maze.ParseDoorColor(" " + c.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := maze.ParseDoorColor("GREEN")
	require.NoError(t, err)
	assert.Equal(t, maze.Green, got)

	_, err = maze.ParseDoorColor("none")
	require.ErrorIs(t, err, maze.ErrBadColor)
}
