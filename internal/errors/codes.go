package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidRegion ErrorCode = "VALIDATION_005"
	ValidationMalformedBody ErrorCode = "VALIDATION_006"
)

// Sector error codes (SECTOR_*)
const (
	SectorNotFound ErrorCode = "SECTOR_001"
	SectorNoModel  ErrorCode = "SECTOR_002"
)

// Sender indicator error codes (INDICATOR_*)
const (
	IndicatorInvalid       ErrorCode = "INDICATOR_001"
	IndicatorConflict      ErrorCode = "INDICATOR_002"
	IndicatorAlreadyExists ErrorCode = "INDICATOR_003"
	IndicatorNotFound      ErrorCode = "INDICATOR_004"
)

// Assessment error codes (ASSESSMENT_*)
const (
	AssessmentInvalidAmount   ErrorCode = "ASSESSMENT_001"
	AssessmentInvalidCategory ErrorCode = "ASSESSMENT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
	SystemPayloadTooLarge    ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidRegion: "Unknown region hint",
	ValidationMalformedBody: "Request body is not valid JSON",

	// Sector errors
	SectorNotFound: "Sector not found",
	SectorNoModel:  "Sector has no vocabulary or weightage model",

	// Sender indicator errors
	IndicatorInvalid:       "Sender indicator must be a single word for a classifiable sector",
	IndicatorConflict:      "Sender indicator already identifies another sector",
	IndicatorAlreadyExists: "Sender indicator already exists",
	IndicatorNotFound:      "Sender indicator not found",

	// Assessment errors
	AssessmentInvalidAmount:   "Amount must be a non-negative decimal",
	AssessmentInvalidCategory: "Invalid transaction category",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
	SystemPayloadTooLarge:    "Request body is too large",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
