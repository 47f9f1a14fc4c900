package http

import (
	"encoding/json"
	"net/http"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/handler/http/response"
)

type GateHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	ListOpenSessions(w http.ResponseWriter, r *http.Request)
	BulkCloseSessions(w http.ResponseWriter, r *http.Request)
}

type gateHandlerImpl struct {
	gateService gate.GateService
}

func NewGateHandler(gateService gate.GateService) GateHandler {
	return &gateHandlerImpl{
		gateService: gateService,
	}
}

// Scan implements GateHandler. Duplicate scans and week-off confirmations
// come back as 200s with the outcome in the payload; only unknown badges,
// deactivated employees and storage failures are error responses.
func (h *gateHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req gate.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.gateService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOpenSessions implements GateHandler.
func (h *gateHandlerImpl) ListOpenSessions(w http.ResponseWriter, r *http.Request) {
	results, err := h.gateService.ListOpenSessions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// BulkCloseSessions implements GateHandler.
func (h *gateHandlerImpl) BulkCloseSessions(w http.ResponseWriter, r *http.Request) {
	var req gate.BulkCloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.gateService.BulkCloseSessions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sessions closed", result)
}
