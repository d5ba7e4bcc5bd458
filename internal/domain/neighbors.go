package domain

import "github.com/bits-and-blooms/bitset"

// NeighborCount is the number of cells sharing a row, column, or box
// with any given cell: 8 on the row, 8 on the column, 4 in the box not
// already counted.
const NeighborCount = 20

// NeighborIndex maps each cell to its neighbors in ascending order.
// It is pure geometry: built once at process start and shared read-only
// by every board, never copied or mutated afterwards.
type NeighborIndex [CellCount][NeighborCount]int

// BuildNeighborIndex computes the constraint graph of the 9x9 grid.
func BuildNeighborIndex() *NeighborIndex {
	idx := new(NeighborIndex)
	for cell := 0; cell < CellCount; cell++ {
		set := bitset.New(CellCount)
		r, c := Row(cell), Col(cell)
		for i := 0; i < GridSize; i++ {
			set.Set(uint(GridSize*r + i))
			set.Set(uint(GridSize*i + c))
		}
		leader := BoxLeader(cell)
		for dr := 0; dr < BoxSize; dr++ {
			for dc := 0; dc < BoxSize; dc++ {
				set.Set(uint(leader + GridSize*dr + dc))
			}
		}
		set.Clear(uint(cell))

		n := 0
		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			idx[cell][n] = int(i)
			n++
		}
	}
	return idx
}

// Neighbors returns the neighbor indices of cell. The returned slice
// aliases the index and must not be modified.
func (ix *NeighborIndex) Neighbors(cell int) []int {
	return ix[cell][:]
}
