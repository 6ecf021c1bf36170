/*
handlers.go - HTTP API handlers for the rent ledger

PURPOSE:
  Exposes the rent ledger calculation via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the rent package.

ENDPOINTS:
  POST   /ledger         Compute the rent ledger for a period
  POST   /api/ledger     Same, under the /api group
  GET    /health         Liveness check

REQUEST FLOW:
  1. Decode the JSON body, keeping every field raw
  2. Validate all fields, collecting every problem
  3. Call rent.Compute
  4. Serialize the ledger

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Body is not a JSON object
  - 422: Validation errors, one entry per problem
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - validation.go: Field validation
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/warp/rent-ledger/generic"
	"github.com/warp/rent-ledger/logging"
	"github.com/warp/rent-ledger/rent"
)

// maxBodyBytes bounds the size of a ledger request body.
const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the settings shared by the HTTP handlers.
type Handler struct {
	Limits Limits

	now func() time.Time
}

// NewHandler creates a handler rejecting requests outside limits.
func NewHandler(limits Limits) *Handler {
	return &Handler{Limits: limits, now: time.Now}
}

// =============================================================================
// LEDGER HANDLERS
// =============================================================================

// CreateLedger computes the ledger for the requested period.
func (h *Handler) CreateLedger(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req LedgerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rentReq, fieldErrs := validateLedgerRequest(req, h.Limits)
	if len(fieldErrs) > 0 {
		log.Debug("ledger request rejected", "errors", len(fieldErrs))
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	ledger, err := rent.Compute(rentReq)
	if err != nil {
		status := http.StatusInternalServerError
		if generic.IsClientError(err) {
			status = http.StatusUnprocessableEntity
		}
		log.Error("ledger computation failed", "error", err)
		writeError(w, status, "Failed to compute ledger", err)
		return
	}

	covered, _ := ledger.Period()
	log.Debug("ledger computed",
		"frequency", rentReq.Frequency,
		"period", covered.String(),
		"lines", len(ledger),
		"total", ledger.Total().String(),
	)
	writeJSON(w, http.StatusOK, toLedgerResponse(ledger))
}

// Health reports that the process is serving requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
