package analyses

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrContractViolation = errors.New("analysis result violates contract")
)
