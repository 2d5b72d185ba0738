package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/docdiff/internal/chardiff"
	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/render"
	"github.com/dgallion1/docdiff/internal/wordify"
)

type diffRequest struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Cleanup  string `json:"cleanup,omitempty"`
	LineMode *bool  `json:"line_mode,omitempty"`
}

type wordifyRequest struct {
	Chunks []wordify.Chunk `json:"chunks"`
}

// decodeBody reads a JSON body of at most limit bytes into v, writing the
// error response itself when it fails.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	opts := s.comparer.DiffOptions()
	if req.Cleanup != "" {
		cleanup, err := chardiff.ParseCleanup(req.Cleanup)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts.Cleanup = cleanup
	}
	if req.LineMode != nil {
		opts.LineMode = *req.LineMode
	}

	res, err := s.comparer.DiffWith(req.A, req.B, opts)
	if err != nil {
		s.log.Error("diff failed", "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == string(render.FormatHTML) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		render.HTML(w, res.Runs)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleWordify(w http.ResponseWriter, r *http.Request) {
	var req wordifyRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	runs, err := wordify.Wordify(req.Chunks)
	switch {
	case errors.Is(err, wordify.ErrUnknownOp):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, wordify.ErrMisaligned):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"stats": compare.Summarize(runs),
	})
}
