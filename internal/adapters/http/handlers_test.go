package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
)

const (
	forcedPuzzle   = ".34678912672195348198342567859761423426853791713924856961537284287419635345286179"
	forcedSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	idx := domain.BuildNeighborIndex()
	uc := usecase.NewService(solver.NewBacktracking(), validator.New(), hint.NewSingles())
	mux := http.NewServeMux()
	New(uc, idx).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, grid string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"grid": grid})
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleSolve(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, "/api/solve", forcedPuzzle)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out solveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Empty(t, out.Error)
	require.Equal(t, forcedSolution, out.Grid)
	require.GreaterOrEqual(t, out.Nodes, 1)
}

func TestHandleSolveNoSolution(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, "/api/solve", "55"+strings.Repeat(".", 79))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out solveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "no solution", out.Error)
	require.Empty(t, out.Grid)
}

func TestHandleSolveBadGrid(t *testing.T) {
	srv := newServer(t)
	for _, grid := range []string{strings.Repeat(".", 80), "x" + strings.Repeat(".", 80)} {
		resp := post(t, srv, "/api/solve", grid)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestHandleSolveMethodNotAllowed(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleValidate(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, "/api/validate", "55"+strings.Repeat(".", 79))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out validateResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.False(t, out.OK)
	require.Contains(t, out.Conflicts, domain.CellCoord{Row: 0, Col: 1})
}

func TestHandleHint(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, "/api/hint", forcedPuzzle)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out hintResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Found)
	require.NotNil(t, out.Hint)
	require.Equal(t, uint8(5), out.Hint.Digit)
}
