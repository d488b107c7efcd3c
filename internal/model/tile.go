package model

// TileKind discriminates the three die-face variants
type TileKind int

const (
	// TileLetter is an ordinary single-character face
	TileLetter TileKind = iota
	// TileDigraph is a two-character face (e.g. "QU") traversed as one
	// indivisible unit
	TileDigraph
	// TileBlank is a hole in the grid: it never matches any character and
	// no path may enter it
	TileBlank
)

// Tile is one die face on the board
type Tile struct {
	Kind TileKind `json:"kind"`
	// Text holds the face letters, uppercase. Empty for blank tiles.
	Text string `json:"text"`
}

// NewLetterTile creates a single-letter tile
func NewLetterTile(letter rune) Tile {
	return Tile{Kind: TileLetter, Text: string(letter)}
}

// NewDigraphTile creates a two-character tile
func NewDigraphTile(text string) Tile {
	return Tile{Kind: TileDigraph, Text: text}
}

// NewBlankTile creates a blank (untraversable) tile
func NewBlankTile() Tile {
	return Tile{Kind: TileBlank}
}

// IsBlank returns true for blank tiles
func (t Tile) IsBlank() bool {
	return t.Kind == TileBlank
}

// Display returns the text shown for this tile when rendering the board
func (t Tile) Display() string {
	if t.Kind == TileBlank {
		return "■"
	}
	return t.Text
}
