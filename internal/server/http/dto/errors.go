package dto

// ErrorResponse is the shape of every error body: a single machine-readable
// code, never internal detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stable error codes surfaced to clients.
const (
	ErrCodeCredentialsRequired = "username_and_password_required"
	ErrCodeUsernameTaken       = "username_taken"
	ErrCodeInvalidCredentials  = "invalid_credentials"
	ErrCodeAuthRequired        = "auth_required"
	ErrCodeInvalidToken        = "invalid_token"
	ErrCodeMessageRequired     = "message_required"
	ErrCodeGenerationFailed    = "generation_failed"
	ErrCodeInternal            = "internal_error"
)
