package engine

// Board is the fixed tile coloring for one game.
type Board struct {
	Size  int
	Tiles []Color
}

// GeneratePattern returns the color of every tile on a size×size board.
// Tile i is TilePalette[(i/3 + i) % len(TilePalette)]. Returns nil for size < 1.
func GeneratePattern(size int) []Color {
	if size < 1 {
		return nil
	}
	n := size * size
	pattern := make([]Color, n)
	for i := 0; i < n; i++ {
		pattern[i] = TilePalette[(i/3+i)%len(TilePalette)]
	}
	return pattern
}

// NewBoard builds a board with a freshly generated pattern.
func NewBoard(size int) Board {
	return Board{Size: size, Tiles: GeneratePattern(size)}
}

// TotalTiles returns the number of addressable tiles.
func (b Board) TotalTiles() int { return len(b.Tiles) }

// TileColor returns the color of tile i, or false if i is off the board.
func (b Board) TileColor(i int) (Color, bool) {
	if i < 0 || i >= len(b.Tiles) {
		return 0, false
	}
	return b.Tiles[i], true
}

// clone returns a board that shares no memory with b.
func (b Board) clone() Board {
	tiles := make([]Color, len(b.Tiles))
	copy(tiles, b.Tiles)
	return Board{Size: b.Size, Tiles: tiles}
}

// SpiralGrid maps grid coordinates to linear tile indices: grid[row][col]
// is the index of the tile drawn at that cell. Index 0 is the top-left
// corner and the order winds clockwise inward. Layout only; the rules work
// on linear indices.
func SpiralGrid(size int) [][]int {
	if size < 1 {
		return nil
	}
	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
	}

	counter := 0
	top, bottom := 0, size-1
	left, right := 0, size-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			grid[top][c] = counter
			counter++
		}
		top++

		for r := top; r <= bottom; r++ {
			grid[r][right] = counter
			counter++
		}
		right--

		if top <= bottom {
			for c := right; c >= left; c-- {
				grid[bottom][c] = counter
				counter++
			}
			bottom--
		}

		if left <= right {
			for r := bottom; r >= top; r-- {
				grid[r][left] = counter
				counter++
			}
			left++
		}
	}
	return grid
}
