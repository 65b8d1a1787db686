package content

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrBadDate    = errors.New("invalid date")
)
