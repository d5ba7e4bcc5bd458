package validator

import (
	"context"

	"svw.info/gridsolve/internal/domain"
)

// FastValidator scans rows, columns, and boxes for duplicate solved
// digits. Cells with more than one candidate are ignored.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < domain.GridSize; r++ {
		var seen domain.CandidateSet
		for c := 0; c < domain.GridSize; c++ {
			seen = mark(b, r, c, seen, &conf)
		}
	}
	// cols
	for c := 0; c < domain.GridSize; c++ {
		var seen domain.CandidateSet
		for r := 0; r < domain.GridSize; r++ {
			seen = mark(b, r, c, seen, &conf)
		}
	}
	// boxes
	for br := 0; br < domain.BoxSize; br++ {
		for bc := 0; bc < domain.BoxSize; bc++ {
			var seen domain.CandidateSet
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					seen = mark(b, br*domain.BoxSize+dr, bc*domain.BoxSize+dc, seen, &conf)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

func mark(b *domain.Board, r, c int, seen domain.CandidateSet, conf *[]domain.CellCoord) domain.CandidateSet {
	d, ok := b.Cells[r*domain.GridSize+c].Value()
	if !ok {
		return seen
	}
	single := domain.Only(d)
	if seen&single != 0 {
		*conf = append(*conf, domain.CellCoord{Row: r, Col: c})
	}
	return seen | single
}
