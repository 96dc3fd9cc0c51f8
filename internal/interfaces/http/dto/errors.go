package dto

import "net/http"

// General error codes produced by the HTTP layer itself
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed or unbindable requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request fields fail binding validation
	ErrCodeValidation = "VALIDATION_ERROR"
)

// errorCodeHTTPStatus maps domain and renderer error codes to HTTP statuses.
// Template configuration mistakes are 400s; data records that are well-formed
// but violate the render contract are 422s.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_STATE":  http.StatusConflict,

	// Template configuration errors
	"INVALID_INPUT":       http.StatusBadRequest,
	"INVALID_DOC_TYPE":    http.StatusBadRequest,
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_PAPER_SIZE":  http.StatusBadRequest,
	"INVALID_ORIENTATION": http.StatusBadRequest,
	"INVALID_LANGUAGE":    http.StatusBadRequest,
	"INVALID_MARGINS":     http.StatusBadRequest,
	"INVALID_SECTION":     http.StatusBadRequest,
	"INVALID_FIELD":       http.StatusBadRequest,
	"INVALID_TEMPLATE":    http.StatusBadRequest,

	// Render contract violations
	"INVALID_DATA":    http.StatusUnprocessableEntity,
	"NEGATIVE_AMOUNT": http.StatusUnprocessableEntity,
	"MISSING_PARTY":   http.StatusUnprocessableEntity,

	"RENDER_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
