package hint

import (
	"context"
	"fmt"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/propagate"
)

// Singles implements a minimal Hinter: it reports the first blank cell
// that propagation forces to a single digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	run := propagate.Run(b)
	for cell := 0; cell < domain.CellCount; cell++ {
		if b.CellSolved(cell) {
			continue
		}
		if d, ok := run.Cells[cell].Value(); ok {
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", d),
				Cells:   []domain.CellCoord{domain.Coord(cell)},
				Digit:   d,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
