package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParallelMatchesSequential(t *testing.T) {
	// Each puzzle has a unique solution, so sibling scheduling
	// cannot change the outcome.
	for _, tc := range []struct {
		name, puzzle string
	}{
		{"classic", classicPuzzle},
		{"search", searchPuzzle},
		{"forced", forcedPuzzle},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			seq, _, err := NewBacktracking().Solve(ctx, mustParse(t, tc.puzzle))
			require.NoError(t, err)
			par, _, err := NewParallel(4).Solve(ctx, mustParse(t, tc.puzzle))
			require.NoError(t, err)
			require.Equal(t, seq.Render(), par.Render())
			requireValidSolution(t, par)
		})
	}
}

func TestParallelUnsatisfiable(t *testing.T) {
	s := NewParallel(4)
	out, _, err := s.Solve(context.Background(), mustParse(t, "55"+strings.Repeat(".", 79)))
	require.ErrorIs(t, err, ErrUnsatisfiable)
	require.Nil(t, out)
}

func TestParallelSingleWorkerDegradesToSequential(t *testing.T) {
	s := NewParallel(1)
	out, _, err := s.Solve(context.Background(), mustParse(t, searchPuzzle))
	require.NoError(t, err)
	requireValidSolution(t, out)
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewParallel(4).Solve(ctx, mustParse(t, classicPuzzle))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParallelBudgetExceeded(t *testing.T) {
	s := NewParallel(4)
	s.Budget = 1
	_, _, err := s.Solve(context.Background(), mustParse(t, strings.Repeat(".", 81)))
	require.ErrorIs(t, err, ErrBudgetExceeded)
}
