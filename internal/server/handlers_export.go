package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/interview-forge/internal/export"
	"github.com/jonathan/interview-forge/internal/types"
)

// handleExportInterviews encodes the posted records in the format selected
// by the ?format query parameter. Download formats are served as
// attachments with a suggested file name; view formats are served inline.
func (s *Server) handleExportInterviews(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: interviews must be a list")
		return
	}

	doc, err := export.Encode(req.Interviews, format)
	if err != nil {
		log.Printf("Export failed (format=%s): %v", format, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	if format.Inline() {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Name))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		log.Printf("Error writing export payload: %v", err)
	}
}
