package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_HTTP_OK

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED

	// Deals
	ErrorCode_DEAL_NOT_FOUND
	ErrorCode_DEAL_ALREADY_EXISTS
	ErrorCode_DEAL_INVALID_STAGE

	// Interactions
	ErrorCode_INTERACTION_NOT_FOUND
	ErrorCode_INTERACTION_DUPLICATE

	// Risk assessment
	ErrorCode_ASSESSMENT_NOT_FOUND
	ErrorCode_ASSESSMENT_FAILED
	ErrorCode_HISTORY_UNAVAILABLE
	ErrorCode_EXPORT_FAILED

	// Webhooks
	ErrorCode_WEBHOOK_INVALID_SIGNATURE

	// Integrations
	ErrorCode_INTEGRATION_CACHE_FAILED
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CLASSIFIER_FAILED

	// Database
	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
	ErrorCode_DB_TRANSACTION_FAILED
	ErrorCode_DB_CONSTRAINT_VIOLATION
)

// String returns the stable string form used in logs and API bodies
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_PERMISSION_DENIED:
		return "PERMISSION_DENIED"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_FORBIDDEN:
		return "FORBIDDEN"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_AUTH_INVALID_TOKEN:
		return "AUTH_INVALID_TOKEN"
	case ErrorCode_AUTH_TOKEN_EXPIRED:
		return "AUTH_TOKEN_EXPIRED"
	case ErrorCode_DEAL_NOT_FOUND:
		return "DEAL_NOT_FOUND"
	case ErrorCode_DEAL_ALREADY_EXISTS:
		return "DEAL_ALREADY_EXISTS"
	case ErrorCode_DEAL_INVALID_STAGE:
		return "DEAL_INVALID_STAGE"
	case ErrorCode_INTERACTION_NOT_FOUND:
		return "INTERACTION_NOT_FOUND"
	case ErrorCode_INTERACTION_DUPLICATE:
		return "INTERACTION_DUPLICATE"
	case ErrorCode_ASSESSMENT_NOT_FOUND:
		return "ASSESSMENT_NOT_FOUND"
	case ErrorCode_ASSESSMENT_FAILED:
		return "ASSESSMENT_FAILED"
	case ErrorCode_HISTORY_UNAVAILABLE:
		return "HISTORY_UNAVAILABLE"
	case ErrorCode_EXPORT_FAILED:
		return "EXPORT_FAILED"
	case ErrorCode_WEBHOOK_INVALID_SIGNATURE:
		return "WEBHOOK_INVALID_SIGNATURE"
	case ErrorCode_INTEGRATION_CACHE_FAILED:
		return "INTEGRATION_CACHE_FAILED"
	case ErrorCode_INTEGRATION_STORAGE_FAILED:
		return "INTEGRATION_STORAGE_FAILED"
	case ErrorCode_INTEGRATION_CLASSIFIER_FAILED:
		return "INTEGRATION_CLASSIFIER_FAILED"
	case ErrorCode_DB_CONNECTION_FAILED:
		return "DB_CONNECTION_FAILED"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	case ErrorCode_DB_TRANSACTION_FAILED:
		return "DB_TRANSACTION_FAILED"
	case ErrorCode_DB_CONSTRAINT_VIOLATION:
		return "DB_CONSTRAINT_VIOLATION"
	default:
		return "UNSPECIFIED"
	}
}
