package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationNotFound         ErrorCode = "NOTIFICATION_001"
	NotificationInvalidID        ErrorCode = "NOTIFICATION_002"
	NotificationEmptyMessage     ErrorCode = "NOTIFICATION_003"
	NotificationInvalidAmount    ErrorCode = "NOTIFICATION_004"
	NotificationInvalidDirection ErrorCode = "NOTIFICATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryEmptyName     ErrorCode = "CATEGORY_003"
)

// Rule error codes (RULE_*)
const (
	RuleNotFound      ErrorCode = "RULE_001"
	RuleEmptyKeyword  ErrorCode = "RULE_002"
	RuleEmptyCategory ErrorCode = "RULE_003"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerInvalidMonth ErrorCode = "LEDGER_001"
	LedgerInvalidYear  ErrorCode = "LEDGER_002"
	LedgerExportFailed ErrorCode = "LEDGER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Notification errors
	NotificationNotFound:         "Notification not found",
	NotificationInvalidID:        "Invalid notification ID format",
	NotificationEmptyMessage:     "Notification message cannot be empty",
	NotificationInvalidAmount:    "Notification amount cannot be negative",
	NotificationInvalidDirection: "Direction must be \"Entrada\" or \"Saída\"",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryEmptyName:     "Category name cannot be empty",

	// Rule errors
	RuleNotFound:      "Rule not found",
	RuleEmptyKeyword:  "Rule keyword cannot be empty",
	RuleEmptyCategory: "Rule category cannot be empty",

	// Ledger errors
	LedgerInvalidMonth: "Month must be between 1 and 12",
	LedgerInvalidYear:  "Invalid year",
	LedgerExportFailed: "Failed to export ledger as CSV",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
