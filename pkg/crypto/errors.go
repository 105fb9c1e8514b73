package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroScalar is matched by *ZeroScalarError.
	ErrZeroScalar = errors.New("crypto: private key reduces to zero")
	// ErrVerificationFailed is matched by *VerificationFailure.
	ErrVerificationFailed = errors.New("crypto: verification failed")
)

// DecodeError is returned when bytes do not decode to a canonical scalar or
// a valid ristretto255 point, or have the wrong length.
type DecodeError struct {
	What  string // Field being decoded (e.g., "public key", "signature s")
	Cause error  // Underlying decode error (if any)
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("crypto: invalid %s: %v", e.What, e.Cause)
	}
	return fmt.Sprintf("crypto: invalid %s", e.What)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ZeroScalarError is returned when a seed reduces to the zero scalar, which
// has no inverse and therefore no public key.
type ZeroScalarError struct{}

func (e *ZeroScalarError) Error() string {
	return ErrZeroScalar.Error()
}

func (e *ZeroScalarError) Is(target error) bool {
	return target == ErrZeroScalar
}

// VerificationFailure is returned when a signature or proof does not verify.
// It is an expected outcome, not a malfunction.
type VerificationFailure struct {
	What string // "signature" or "shield proof"
}

func (e *VerificationFailure) Error() string {
	return fmt.Sprintf("crypto: %s verification failed", e.What)
}

func (e *VerificationFailure) Is(target error) bool {
	return target == ErrVerificationFailed
}

func errLength(want, got int) error {
	return fmt.Errorf("expected %d bytes, got %d", want, got)
}
