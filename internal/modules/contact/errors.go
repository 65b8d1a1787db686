package contact

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidStatus = errors.New("invalid message status")
)
