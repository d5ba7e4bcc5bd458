package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Coord converts a linear cell index to a CellCoord.
func Coord(cell int) CellCoord {
	return CellCoord{Row: Row(cell), Col: Col(cell)}
}

// Hint describes a forced placement for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Digit   uint8       `json:"digit,omitempty"`
}
