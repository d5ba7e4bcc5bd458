package solver

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/propagate"
)

// errSolved makes errgroup cancel outstanding siblings once one branch
// finds the solution. Never escapes Solve.
var errSolved = errors.New("branch solved")

// Parallel evaluates sibling candidate branches on separate goroutines.
// Branches share no mutable state, so the only coordination needed is
// first-success cancellation: at most one branch of a well-posed puzzle
// can yield a solution, the rest is redundant work worth abandoning.
type Parallel struct {
	// Workers bounds concurrent branch goroutines. Zero or negative
	// means runtime.NumCPU.
	Workers int
	// Budget caps total search nodes across all branches. Zero means
	// unlimited.
	Budget int
}

func NewParallel(workers int) *Parallel { return &Parallel{Workers: workers} }

func (s *Parallel) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	var nodes atomic.Int64
	var inflight atomic.Int64
	inflight.Store(1)

	var search func(ctx context.Context, b *domain.Board) (*domain.Board, error)
	search = func(ctx context.Context, b *domain.Board) (*domain.Board, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if n := nodes.Add(1); s.Budget > 0 && n > int64(s.Budget) {
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
		digits := cur.Cells[cell].Digits()

		// Fan out only while spare workers exist; otherwise this
		// branch stays sequential.
		if int(inflight.Load()) >= workers {
			for _, d := range digits {
				child := cur.Clone()
				child.Cells[cell] = domain.Only(d)
				solved, err := search(ctx, child)
				if err == nil {
					return solved, nil
				}
				if !errors.Is(err, ErrUnsatisfiable) {
					return nil, err
				}
			}
			return nil, ErrUnsatisfiable
		}

		g, gctx := errgroup.WithContext(ctx)
		var solved atomic.Pointer[domain.Board]
		for _, d := range digits {
			child := cur.Clone()
			child.Cells[cell] = domain.Only(d)
			inflight.Add(1)
			g.Go(func() error {
				defer inflight.Add(-1)
				got, err := search(gctx, child)
				if err != nil {
					if errors.Is(err, ErrUnsatisfiable) {
						// Dead branch; siblings keep going.
						return nil
					}
					return err
				}
				solved.Store(got)
				return errSolved
			})
		}
		err := g.Wait()
		if got := solved.Load(); got != nil {
			return got, nil
		}
		if err != nil && !errors.Is(err, errSolved) {
			return nil, err
		}
		return nil, ErrUnsatisfiable
	}

	board, err := search(ctx, b)
	st := ports.Stats{Nodes: int(nodes.Load()), Duration: time.Since(start)}
	return board, st, err
}
