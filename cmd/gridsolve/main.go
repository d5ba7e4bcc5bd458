// Command gridsolve reads one 81-character Sudoku puzzle per stdin line
// and prints either the solved grid or "No solution" for each. With
// -serve it exposes the same engine as a JSON API instead.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httpadapter "svw.info/gridsolve/internal/adapters/http"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/logger"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
)

func main() {
	solverKind := flag.String("solver", "seq", "solver to use: seq|parallel")
	workers := flag.Int("workers", 0, "parallel branch workers (0 = number of CPUs)")
	budget := flag.Int("budget", 0, "max search nodes per puzzle (0 = unlimited)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	serve := flag.String("serve", "", "serve the JSON API on this address instead of reading stdin")
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(strings.ToLower(*levelStr)); err == nil {
		logger.Set(logger.Logger().Level(lvl))
	}
	log := logger.Logger()

	// Built once; every board borrows it.
	idx := domain.BuildNeighborIndex()

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "parallel":
		p := solver.NewParallel(*workers)
		p.Budget = *budget
		s = p
	default:
		bt := solver.NewBacktracking()
		bt.Budget = *budget
		s = bt
	}
	uc := usecase.NewService(s, validator.New(), hint.NewSingles())

	if *serve != "" {
		mux := http.NewServeMux()
		httpadapter.New(uc, idx).Register(mux)
		srv := &http.Server{
			Addr:              *serve,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", *serve).Str("solver", *solverKind).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for in.Scan() {
		line := strings.TrimSuffix(in.Text(), "\r")
		b, err := domain.ParseBoard(line, idx)
		if err != nil {
			out.Flush()
			log.Fatal().Err(err).Msg("cannot parse puzzle")
		}
		solved, st, err := uc.Solve(ctx, b)
		switch {
		case err == nil:
			fmt.Fprintln(out, solved.Render())
		case errors.Is(err, solver.ErrUnsatisfiable):
			fmt.Fprintln(out, "No solution")
		case errors.Is(err, solver.ErrBudgetExceeded):
			fmt.Fprintln(out, "Budget exceeded")
		default:
			out.Flush()
			log.Fatal().Err(err).Msg("solve failed")
		}
		log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("puzzle done")
	}
	if err := in.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading stdin")
	}
}
