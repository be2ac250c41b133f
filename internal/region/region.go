// Package region measures edge-connected groups of a player's tiles.
package region

import "github.com/rocketscienceinc/bigisle/internal/entity"

// Grid is a read-only square board. At must return an empty cell outside the grid.
type Grid interface {
	Size() int
	At(row, col int) entity.Cell
}

var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Largest returns the size of the player's biggest connected group, 0 when the player owns no cells.
func Largest(grid Grid, player entity.Player) int {
	largest := 0
	for _, size := range Sizes(grid, player) {
		largest = max(largest, size)
	}
	return largest
}

// Sizes returns the size of each of the player's connected groups in row-major order of discovery.
func Sizes(grid Grid, player entity.Player) []int {
	size := grid.Size()
	visited := make([]bool, size*size)

	var sizes []int
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if visited[row*size+col] || !grid.At(row, col).IsOwnedBy(player) {
				continue
			}
			sizes = append(sizes, walk(grid, player, visited, row, col))
		}
	}

	return sizes
}

// walk counts the group containing row, col with an explicit stack, marking every cell it reaches.
func walk(grid Grid, player entity.Player, visited []bool, row, col int) int {
	size := grid.Size()
	stack := [][2]int{{row, col}}
	visited[row*size+col] = true

	count := 0
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		for _, d := range directions {
			nr, nc := cell[0]+d[0], cell[1]+d[1]
			if nr < 0 || nr >= size || nc < 0 || nc >= size {
				continue
			}
			if visited[nr*size+nc] || !grid.At(nr, nc).IsOwnedBy(player) {
				continue
			}
			visited[nr*size+nc] = true
			stack = append(stack, [2]int{nr, nc})
		}
	}

	return count
}
