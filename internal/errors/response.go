package errors

import (
	"net/http"
)

// ErrorResponse is the JSON envelope returned for every failed request
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, its message and the request trace ID
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customises an ErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails attaches detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = append(er.Error.Details, details...)
	}
}

// WithMessage replaces the catalog message for the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		if message != "" {
			er.Error.Message = message
		}
	}
}

// NewErrorResponse builds the envelope for code using the catalog message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationErrorFromList is a VALIDATION_001 envelope with one detail line per failed field
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:         http.StatusBadRequest,
	ValidationRequiredField:   http.StatusBadRequest,
	ValidationInvalidFormat:   http.StatusBadRequest,
	ValidationOutOfRange:      http.StatusBadRequest,
	ValidationInvalidRegion:   http.StatusBadRequest,
	ValidationMalformedBody:   http.StatusBadRequest,
	IndicatorInvalid:          http.StatusBadRequest,
	AssessmentInvalidAmount:   http.StatusBadRequest,
	AssessmentInvalidCategory: http.StatusBadRequest,

	SectorNotFound:      http.StatusNotFound,
	SectorNoModel:       http.StatusNotFound,
	IndicatorNotFound:   http.StatusNotFound,
	SystemRouteNotFound: http.StatusNotFound,

	IndicatorConflict:      http.StatusConflict,
	IndicatorAlreadyExists: http.StatusConflict,

	SystemPayloadTooLarge:    http.StatusRequestEntityTooLarge,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its HTTP status. Unlisted codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
