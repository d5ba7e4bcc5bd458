// Package propagate shrinks candidate sets using solved-neighbor
// information until nothing more can be eliminated.
package propagate

import "svw.info/gridsolve/internal/domain"

// Run intersects every cell with the complement of its neighbors'
// solved values, repeating full passes until a pass changes no cell.
//
// The fixed point does not depend on visitation order: removal is
// monotone and the update rule reads only solved neighbors. Termination
// is guaranteed because total cardinality over the board is bounded and
// strictly decreases on every pass that reports a change.
//
// Run never fails. The result may be inconsistent (some cell emptied);
// callers must check Solved and Consistent themselves.
func Run(b *domain.Board) *domain.Board {
	out := b.Clone()
	for changed := true; changed; {
		changed = false
		for cell := 0; cell < domain.CellCount; cell++ {
			next := out.Cells[cell].Without(out.NonCandidates(cell))
			if next != out.Cells[cell] {
				out.Cells[cell] = next
				changed = true
			}
		}
	}
	return out
}
