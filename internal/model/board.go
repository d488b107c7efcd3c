package model

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// IsAdjacent returns true if the two positions differ by at most 1 in each
// coordinate and are not identical (8-connectivity, including diagonals)
func (p Position) IsAdjacent(other Position) bool {
	if p == other {
		return false
	}
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Board is an NxN grid of tiles. Cells are fixed after generation; nothing
// mutates a board for the lifetime of its game.
type Board struct {
	Size  int      `json:"size"`  // Grid dimension (4, 5 or 6)
	Cells [][]Tile `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates a board of the given size with all cells zero-valued
func NewBoard(size int) *Board {
	cells := make([][]Tile, size)
	for i := range cells {
		cells[i] = make([]Tile, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the tile at the given position. Out-of-bounds access is a
// programming error; callers must check IsValidPosition first.
func (b *Board) Get(pos Position) Tile {
	return b.Cells[pos.Row][pos.Col]
}

// Set places a tile at the given position (generation only)
func (b *Board) Set(pos Position, tile Tile) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = tile
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Display returns the per-cell display text, row-major, for rendering
func (b *Board) Display() [][]string {
	rows := make([][]string, b.Size)
	for r := 0; r < b.Size; r++ {
		rows[r] = make([]string, b.Size)
		for c := 0; c < b.Size; c++ {
			rows[r][c] = b.Cells[r][c].Display()
		}
	}
	return rows
}
