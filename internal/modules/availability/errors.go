package availability

import "errors"

var (
	ErrValidation  = errors.New("invalid availability request")
	ErrCheckFailed = errors.New("failed to check availability")
)
