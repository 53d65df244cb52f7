package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/interview-forge/internal/types"
)

// handleCreateCheckoutSession asks the payment boundary for a redirectable
// payment session for the submitted profile.
func (s *Server) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req types.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.provider.CreateSession(r.Context(), req.Profile, req.ReturnURL)
	if err != nil {
		log.Printf("Checkout session creation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sess)
}
