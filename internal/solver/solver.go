// Package solver drives backtracking search over candidate-set boards,
// using propagation as the pruning step at every node.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/propagate"
)

// ErrUnsatisfiable reports that the puzzle as given admits no valid
// completion. It is a normal outcome, not a failure.
var ErrUnsatisfiable = errors.New("puzzle is unsatisfiable")

// ErrBudgetExceeded reports that the search visited more nodes than the
// configured budget allows. Distinct from ErrUnsatisfiable: the puzzle
// may still have a solution.
var ErrBudgetExceeded = errors.New("search node budget exceeded")

// Backtracking is the sequential depth-first solver.
type Backtracking struct {
	// Budget caps the number of search nodes visited. Zero means
	// unlimited.
	Budget int
}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// Solve propagates, checks termination, and branches on the unsolved
// cell with the fewest candidates (lowest index on ties), trying its
// digits in ascending order. The first solved branch wins.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func(b *domain.Board) (*domain.Board, error)
	dfs = func(b *domain.Board) (*domain.Board, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nodes++
		if s.Budget > 0 && nodes > s.Budget {
			return nil, ErrBudgetExceeded
		}
		cur := propagate.Run(b)
		if cur.Solved() {
			return cur, nil
		}
		if !cur.Consistent() {
			return nil, ErrUnsatisfiable
		}
		cell := mostConstrained(cur)
		for _, d := range cur.Cells[cell].Digits() {
			child := cur.Clone()
			child.Cells[cell] = domain.Only(d)
			solved, err := dfs(child)
			if err == nil {
				return solved, nil
			}
			if !errors.Is(err, ErrUnsatisfiable) {
				// Budget or cancellation aborts the whole search.
				return nil, err
			}
		}
		return nil, ErrUnsatisfiable
	}
	solved, err := dfs(b)
	return solved, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}

// mostConstrained returns the unsolved cell with the smallest candidate
// set, lowest index winning ties. Only called on consistent, unsolved
// boards, so a result always exists.
func mostConstrained(b *domain.Board) int {
	best, bestCount := -1, domain.GridSize+1
	for cell := 0; cell < domain.CellCount; cell++ {
		if n := b.Cells[cell].Count(); n > 1 && n < bestCount {
			best, bestCount = cell, n
			if n == 2 {
				break
			}
		}
	}
	return best
}
