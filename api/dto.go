/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the rent domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Response wrappers

TYPES:
  Ledger:
    LedgerRequest, LedgerLineDTO, LedgerResponse

  Errors:
    FieldError, ValidationErrorResponse, ErrorResponse

VALIDATION:
  Validation is done in validation.go, not in DTOs. LedgerRequest keeps
  every field raw so presence and type can be reported per field.

SEE ALSO:
  - handlers.go: Uses these types
  - validation.go: Turns a LedgerRequest into a rent.Request
*/
package api

import (
	"encoding/json"

	"github.com/warp/rent-ledger/generic"
	"github.com/warp/rent-ledger/rent"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// LedgerRequest is the request body for POST /ledger.
type LedgerRequest struct {
	StartDate  json.RawMessage `json:"start_date"`
	EndDate    json.RawMessage `json:"end_date"`
	Frequency  json.RawMessage `json:"frequency"`
	WeeklyRent json.RawMessage `json:"weekly_rent"`
	Timezone   json.RawMessage `json:"timezone"` // ignored, ledgers are computed in UTC
}

// LedgerLineDTO represents one ledger line in API responses.
type LedgerLineDTO struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Amount    generic.Amount `json:"amount"`
}

// LedgerResponse is the success response for POST /ledger.
type LedgerResponse struct {
	Ledger []LedgerLineDTO `json:"ledger"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every invalid field of a request.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// HealthDTO is the liveness response.
type HealthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func toLedgerResponse(ledger rent.Ledger) LedgerResponse {
	lines := make([]LedgerLineDTO, len(ledger))
	for i, l := range ledger {
		lines[i] = LedgerLineDTO{
			StartDate: generic.FormatISO8601(l.Start),
			EndDate:   generic.FormatISO8601(l.End),
			Amount:    l.Amount,
		}
	}
	return LedgerResponse{Ledger: lines}
}
