package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/interview-forge/internal/types"
)

// handleStartJob redeems a checkout session and starts generation. Errors
// here use a {"message": ...} body; the status endpoint uses {"error": ...}.
func (s *Server) handleStartJob(w http.ResponseWriter, r *http.Request) {
	var req types.StartJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.messageResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.messageResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID, err := s.manager.Start(r.Context(), req.SessionID)
	if err != nil {
		log.Printf("Job start failed for session %s: %v", req.SessionID, err)
		s.messageResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, types.StartJobResponse{JobID: jobID})
}

// handleJobStatus returns the polled job snapshot.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if jobID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	job, ok := s.manager.Get(jobID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// messageResponse writes an error body shaped {"message": ...}, the format
// the job start boundary uses.
func (s *Server) messageResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}
