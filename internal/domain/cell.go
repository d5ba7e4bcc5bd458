package domain

// Grid geometry for standard Sudoku. Cells are indexed row-major in
// [0, CellCount).
const (
	BoxSize   = 3
	GridSize  = BoxSize * BoxSize
	CellCount = GridSize * GridSize
)

// Row returns the 0-based row of cell.
func Row(cell int) int { return cell / GridSize }

// Col returns the 0-based column of cell.
func Col(cell int) int { return cell % GridSize }

// BoxLeader returns the index of the top-left cell of cell's 3x3 box.
func BoxLeader(cell int) int {
	r, c := Row(cell), Col(cell)
	return GridSize*(r-r%BoxSize) + (c - c%BoxSize)
}
