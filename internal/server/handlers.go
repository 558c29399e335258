package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mazeforge/pkg/buildinfo"
	"github.com/matzehuels/mazeforge/pkg/errors"
	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/mazeio"
	"github.com/matzehuels/mazeforge/pkg/optimize"
	"github.com/matzehuels/mazeforge/pkg/pipeline"
	"github.com/matzehuels/mazeforge/pkg/render"
	"github.com/matzehuels/mazeforge/pkg/store"
)

// maxBodyBytes caps request bodies. Maze documents are small; anything
// bigger is a mistake or abuse.
const maxBodyBytes = 1 << 20

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type generateRequest struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	SeedPacket   []int  `json:"seed_packet,omitempty"`
	Solve        bool   `json:"solve"`
	Format       string `json:"format,omitempty"`
	CellSize     int    `json:"cell_size,omitempty"`
	ShowSolution bool   `json:"show_solution"`
}

type generateResponse struct {
	Maze      json.RawMessage `json:"maze"`
	Completed bool            `json:"completed"`
	Solution  *maze.Solution  `json:"solution,omitempty"`
	MazeHash  string          `json:"maze_hash"`
}

// handleGenerate runs the pipeline. Without a format the response is
// JSON; with one, the raw artifact is returned under its content type.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Width:        req.Width,
		Height:       req.Height,
		SeedPacket:   req.SeedPacket,
		Solve:        req.Solve,
		CellSize:     req.CellSize,
		ShowSolution: req.ShowSolution,
	}
	if req.Format != "" {
		opts.Formats = []string{req.Format}
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.Format != "" {
		w.Header().Set("Content-Type", contentTypes[req.Format])
		w.WriteHeader(http.StatusOK)
		w.Write(result.Artifacts[req.Format])
		return
	}

	doc, err := mazeio.Marshal(result.Maze)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{
		Maze:      doc,
		Completed: result.Completed,
		Solution:  result.Solution,
		MazeHash:  result.MazeHash,
	})
}

// handleSolve accepts a maze document and returns its BFS solution.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	m, err := mazeio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidMaze, err, "decode maze document"))
		return
	}

	sol, err := maze.Solve(m)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sol)
}

type optimizeRequest struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Iterations int `json:"iterations,omitempty"`
	Divisions  int `json:"divisions,omitempty"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "run archive not configured", http.StatusServiceUnavailable)
		return
	}

	var req optimizeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateDimensions(req.Width, req.Height); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := optimize.Run(r.Context(), optimize.Options{
		Width:      req.Width,
		Height:     req.Height,
		Iterations: req.Iterations,
		Divisions:  req.Divisions,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if result == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsolvable, "no solvable maze found"))
		return
	}

	run := store.NewRun(result)
	if err := s.store.Put(r.Context(), run); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "archive run"))
		return
	}

	s.logger.Info("archived optimizer run",
		"id", run.ID, "size", strconv.Itoa(run.Width)+"x"+strconv.Itoa(run.Height),
		"length", run.Length)
	s.writeJSON(w, http.StatusCreated, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "run archive not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}

	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list runs"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

// handleRunArtifact re-renders an archived run's maze in the requested
// format (default svg). The solution overlay is recomputed on demand.
func (s *Server) handleRunArtifact(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if !pipeline.ValidFormats[format] {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format))
		return
	}

	m, err := run.Maze()
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidMaze, err, "reconstruct run %s", run.ID))
		return
	}

	var data []byte
	switch format {
	case pipeline.FormatSVG:
		opts := []render.SVGOption{render.WithEndpoints()}
		if sol, err := maze.Solve(m); err == nil && sol.Solved {
			opts = append(opts, render.WithSolution(sol.Path))
		}
		data = render.SVG(m, opts...)
	case pipeline.FormatDOT:
		data = []byte(render.ToDOT(m))
	case pipeline.FormatPNG:
		data, err = render.RenderPNG(render.ToDOT(m))
		if err != nil {
			s.writeError(w, err)
			return
		}
	case pipeline.FormatJSON:
		data, err = mazeio.Marshal(m)
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*store.Run, bool) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(r.Context(), id)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			s.writeError(w, errors.New(errors.ErrCodeRunNotFound, "run %s not found", id))
		} else {
			s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "fetch run %s", id))
		}
		return nil, false
	}
	return run, true
}

// =============================================================================
// Helpers
// =============================================================================

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidSeedPacket,
		errors.ErrCodeInvalidMaze:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeRunNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported, errors.ErrCodeUnsolvable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
