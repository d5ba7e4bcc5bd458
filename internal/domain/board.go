package domain

// Board is the state being searched: one candidate set per cell plus a
// non-owning reference to the shared neighbor index. Search branches
// copy the Cells array by value via Clone; the index is always borrowed.
type Board struct {
	Cells     [CellCount]CandidateSet
	neighbors *NeighborIndex
}

// ParseBoard builds a board from its 81-character textual form: '.' for
// a blank cell, '1'-'9' for a given digit. Any other length or
// character yields a *ParseError.
func ParseBoard(s string, idx *NeighborIndex) (*Board, error) {
	if len(s) != CellCount {
		return nil, &ParseError{Kind: ParseErrLength, WantLen: CellCount, GotLen: len(s)}
	}
	b := &Board{neighbors: idx}
	for i := 0; i < CellCount; i++ {
		switch ch := s[i]; {
		case ch == '.':
			b.Cells[i] = AllCandidates
		case ch >= '1' && ch <= '9':
			b.Cells[i] = Only(ch - '0')
		default:
			return nil, &ParseError{Kind: ParseErrCharacter, Pos: i, Char: ch}
		}
	}
	return b, nil
}

// Clone returns an independent copy sharing the same neighbor index.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// CellSolved reports whether cell has exactly one candidate left.
func (b *Board) CellSolved(cell int) bool { return b.Cells[cell].Solved() }

// CellSolvable reports whether cell has any candidate left.
func (b *Board) CellSolvable(cell int) bool { return b.Cells[cell] != 0 }

// Solved reports whether every cell is down to a single candidate.
func (b *Board) Solved() bool {
	for cell := 0; cell < CellCount; cell++ {
		if !b.CellSolved(cell) {
			return false
		}
	}
	return true
}

// Consistent reports whether no cell has run out of candidates.
func (b *Board) Consistent() bool {
	for cell := 0; cell < CellCount; cell++ {
		if !b.CellSolvable(cell) {
			return false
		}
	}
	return true
}

// NonCandidates returns the digits cell is forbidden to hold: the union
// of its solved neighbors' values.
func (b *Board) NonCandidates(cell int) CandidateSet {
	var forbidden CandidateSet
	for _, n := range b.neighbors.Neighbors(cell) {
		if s := b.Cells[n]; s.Solved() {
			forbidden |= s
		}
	}
	return forbidden
}

// Render produces the 81-character textual form: the digit for solved
// cells, '.' for everything else.
func (b *Board) Render() string {
	buf := make([]byte, CellCount)
	for i := 0; i < CellCount; i++ {
		if d, ok := b.Cells[i].Value(); ok {
			buf[i] = '0' + d
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}
