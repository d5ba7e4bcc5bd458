package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/usecase"
)

// Handler exposes solve/validate/hint over JSON. Boards travel in the
// same 81-character textual form the line protocol uses.
type Handler struct {
	UC  *usecase.Service
	Idx *domain.NeighborIndex
}

func New(uc *usecase.Service, idx *domain.NeighborIndex) *Handler {
	return &Handler{UC: uc, Idx: idx}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
}

type gridReq struct {
	Grid string `json:"grid"`
}

// decodeBoard handles method check, JSON decode, and board parsing.
// A nil board with a false ok means the response is already written.
func (h *Handler) decodeBoard(w http.ResponseWriter, r *http.Request) (*domain.Board, bool) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return nil, false
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON: " + err.Error()})
		return nil, false
	}
	b, err := domain.ParseBoard(req.Grid, h.Idx)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return nil, false
	}
	return b, true
}

type solveResp struct {
	Grid       string `json:"grid,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBoard(w, r)
	if !ok {
		return
	}
	solved, st, err := h.UC.Solve(r.Context(), b)
	resp := solveResp{Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
	switch {
	case err == nil:
		resp.Grid = solved.Render()
	case errors.Is(err, solver.ErrUnsatisfiable):
		resp.Error = "no solution"
	case errors.Is(err, solver.ErrBudgetExceeded):
		resp.Error = "budget exceeded"
	default:
		w.WriteHeader(http.StatusInternalServerError)
		resp.Error = err.Error()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBoard(w, r)
	if !ok {
		return
	}
	valid, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: valid, Conflicts: conflicts})
}

type hintResp struct {
	Hint  *domain.Hint `json:"hint,omitempty"`
	Found bool         `json:"found"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBoard(w, r)
	if !ok {
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &hint
	}
	_ = json.NewEncoder(w).Encode(resp)
}
