package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	UpsertBatch(w http.ResponseWriter, r *http.Request)
	ImportWorkbook(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// UpsertBatch implements RosterHandler.
func (h *rosterHandlerImpl) UpsertBatch(w http.ResponseWriter, r *http.Request) {
	var req roster.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.rosterService.UpsertBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster updated", result)
}

// ImportWorkbook implements RosterHandler.
func (h *rosterHandlerImpl) ImportWorkbook(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Roster workbook file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.rosterService.ImportWorkbook(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster imported", result)
}
