package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/dgallion1/docdiff/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// errUpload carries an HTTP status for a rejected upload.
type errUpload struct {
	msg  string
	code int
}

func (e *errUpload) Error() string { return e.msg }

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	// Limit total request size: two files plus 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	a, err := s.readUpload(r, "file_a")
	if err != nil {
		uploadError(w, err)
		return
	}
	b, err := s.readUpload(r, "file_b")
	if err != nil {
		uploadError(w, err)
		return
	}
	s.submitCompare(w, a, b)
}

func uploadError(w http.ResponseWriter, err error) {
	var ue *errUpload
	if errors.As(err, &ue) {
		jsonError(w, ue.msg, ue.code)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) readUpload(r *http.Request, field string) (compare.Input, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return compare.Input{}, &errUpload{field + " is required: " + err.Error(), http.StatusBadRequest}
	}
	defer file.Close()
	return s.readFile(file, header)
}

func (s *Server) readFile(file multipart.File, header *multipart.FileHeader) (compare.Input, error) {
	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return compare.Input{}, &errUpload{fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest}
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return compare.Input{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return compare.Input{}, &errUpload{fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge}
	}
	return compare.Input{Filename: filename, Data: data}, nil
}

func (s *Server) submitCompare(w http.ResponseWriter, a, b compare.Input) {
	job := pipeline.NewJob(a, b)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":   job.ID,
		"status":   pipeline.StatusQueued,
		"poll_url": fmt.Sprintf("/api/compare/%s", job.ID),
	})
}

func (s *Server) handleCompareStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}
