// Package server exposes the vision session and the solver over a small
// JSON HTTP API.
//
// A client streams observed face grids into a session (init, frame,
// finish) and receives the voted cube state back; a solve request returns
// the staged solution for a given state.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/cubetools/gocubing"
	"github.com/cubetools/gocubing/solver"
)

// maxSize bounds accepted cube sizes; beyond this the solver gets
// impractically slow for an interactive session.
const maxSize = 10

// Server holds the single active vision session.
type Server struct {
	mu      sync.Mutex
	buf     *gocubing.ObservationBuffer
	verbose bool
	logf    func(format string, args ...any)
}

// New creates a server. With verbose set, requests are logged through logf.
func New(verbose bool, logf func(format string, args ...any)) *Server {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Server{verbose: verbose, logf: logf}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/init", s.handleInit)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.HandleFunc("/finish", s.handleFinish)
	mux.HandleFunc("/solve", s.handleSolve)
	return mux
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

type initRequest struct {
	Size int `json:"size"`
}

type frameRequest struct {
	Faces map[string][][]string `json:"faces"`
}

type frameResponse struct {
	OK       bool `json:"ok"`
	Complete bool `json:"complete"`
}

type finishResponse struct {
	Action string `json:"action"`
	Cube   string `json:"cube"`
}

type solveRequest struct {
	Cube string `json:"cube"`
}

type solveResponse struct {
	Action string       `json:"action"`
	Size   int          `json:"size"`
	Moves  string       `json:"moves"`
	Stages []solveStage `json:"stages"`
}

type solveStage struct {
	Name  string `json:"name"`
	Moves string `json:"moves"`
	Cube  string `json:"cube"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req initRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Size < 1 || req.Size > maxSize {
		writeError(w, http.StatusBadRequest, fmt.Errorf("size %d out of range", req.Size))
		return
	}

	s.mu.Lock()
	s.buf = gocubing.NewObservationBuffer(req.Size)
	s.mu.Unlock()

	if s.verbose {
		s.logf("session started: size %d", req.Size)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// parseGrid converts a grid of color letters into colors. Cells the client
// could not classify come through as "?" and are skipped by the buffer.
func parseGrid(cells [][]string) ([][]gocubing.Color, error) {
	grid := make([][]gocubing.Color, len(cells))
	for i, row := range cells {
		grid[i] = make([]gocubing.Color, len(row))
		for j, cell := range row {
			if cell == "" || cell == "?" {
				grid[i][j] = gocubing.ColorUnknown
				continue
			}
			color, ok := gocubing.ColorFromByte(cell[0])
			if !ok || len(cell) != 1 {
				return nil, fmt.Errorf("unknown color %q: %w", cell, gocubing.ErrInvalidState)
			}
			grid[i][j] = color
		}
	}
	return grid, nil
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req frameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("no active session"))
		return
	}

	for name, cells := range req.Faces {
		if len(name) != 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown face %q", name))
			return
		}
		face, ok := gocubing.FaceFromLetter(name[0])
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown face %q", name))
			return
		}
		grid, err := parseGrid(cells)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.buf.Observe(face, grid); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, frameResponse{OK: true, Complete: s.buf.Complete()})
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("no active session"))
		return
	}

	cube, err := s.buf.Cube()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	s.buf = nil

	if s.verbose {
		s.logf("session finished: %s", cube.String())
	}
	writeJSON(w, http.StatusOK, finishResponse{Action: "cv_finish", Cube: cube.String()})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req solveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cube, err := gocubing.FromString(req.Cube)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := solver.SolveReport(cube)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	resp := solveResponse{
		Action: "solve",
		Size:   report.Size,
		Moves:  strings.Join(report.Moves, " "),
	}
	for _, st := range report.Stages {
		resp.Stages = append(resp.Stages, solveStage{
			Name:  st.Name,
			Moves: strings.Join(st.Moves, " "),
			Cube:  st.State,
		})
	}

	if s.verbose {
		s.logf("solved %dx%d in %d moves", report.Size, report.Size, len(report.Moves))
	}
	writeJSON(w, http.StatusOK, resp)
}
