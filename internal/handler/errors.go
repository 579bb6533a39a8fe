package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgCategoryNotFoundError = "Category not found"
	ErrMsgSessionNotFoundError  = "No fishing session for that player"
	ErrMsgSessionBusyError      = "That player's catch is still being resolved"
	ErrMsgUnknownWorldError     = "Unknown world"
	ErrMsgStoreUnavailableError = "Unique item store is temporarily unavailable"
	ErrMsgInvalidConfigError    = "Fishing configuration is invalid"

	ErrMsgReloadConfigFailed = "Failed to reload configuration"
	ErrMsgUniqueStatsFailed  = "Failed to retrieve unique item stats"
)

// Success messages
const (
	MsgSessionStarted       = "Fishing session started"
	MsgBiteRecorded         = "Bite recorded"
	MsgSessionCancelled     = "Fishing session cancelled"
	MsgDebugCategorySet     = "Debug category set"
	MsgDebugCategoryCleared = "Debug category cleared"
	MsgConfigReloaded       = "Configuration reloaded"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgMissingParam      = "Missing request parameter"
	LogMsgServiceError      = "Service error"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgReloadFailed      = "Configuration reload failed"
	LogMsgReloadSucceeded   = "Configuration reloaded"
	LogMsgUniqueStatsFailed = "Failed to load unique item stats"
)
