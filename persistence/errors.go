package persistence

import "errors"

var (
	ErrInvalidInput = errors.New("persistence: invalid input dimensions")
	ErrTooLarge     = errors.New("persistence: image width exceeds quantization safety margin")
)
