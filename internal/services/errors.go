package services

import (
	"errors"
	"fmt"
)

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrStepNotFound            = errors.New("step not found")
	ErrForbidden               = errors.New("not allowed to act on this contract")
	ErrAlreadySigned           = errors.New("already signed")
	ErrClientSignatureRequired = errors.New("client must sign the step first")
	ErrStepNotPending          = errors.New("step not found or already processed")
	ErrStepRejected            = errors.New("rejected steps cannot be signed")
	ErrInvalidTransition       = errors.New("invalid status transition")
)

// ValidationError carries a message that is safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
