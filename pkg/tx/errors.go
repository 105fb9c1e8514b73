package tx

import "fmt"

// PayloadError is returned when a transaction or payload cannot be encoded
// or decoded.
type PayloadError struct {
	Code    string // Error code (e.g., ErrInvalidPayload)
	Message string // Human-readable error message
	Cause   error  // Underlying error (if any)
}

func (e *PayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tx error [%s]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("tx error [%s]: %s", e.Code, e.Message)
}

func (e *PayloadError) Unwrap() error {
	return e.Cause
}

// Error codes.
const (
	ErrInvalidFormat    = "INVALID_FORMAT"    // Frame or field is malformed
	ErrInvalidVersion   = "INVALID_VERSION"   // Unsupported transaction version
	ErrInvalidType      = "INVALID_TYPE"      // Unknown transaction type id
	ErrInvalidPayload   = "INVALID_PAYLOAD"   // Payload violates a count or size limit
	ErrInvalidSignature = "INVALID_SIGNATURE" // Signature does not verify for the source
)

func payloadErr(code, format string, args ...interface{}) error {
	return &PayloadError{Code: code, Message: fmt.Sprintf(format, args...)}
}
