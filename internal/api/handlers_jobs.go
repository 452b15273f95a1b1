package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/docoutline/internal/pipeline"
	"github.com/dgallion1/docoutline/internal/render"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// handleJobOutline returns the outline of a completed job, in the job's
// format unless the format query parameter overrides it.
func (s *Server) handleJobOutline(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	format := job.Format()
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := render.ParseFormat(v)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	doc, ok := job.Outline()
	if !ok {
		snap := job.Snapshot()
		msg := "job is " + string(snap.Status)
		if snap.Status == pipeline.StatusFailed {
			msg += ": " + snap.Result.Error
		}
		jsonError(w, msg, http.StatusConflict)
		return
	}
	writeDocument(w, doc, format)
}
