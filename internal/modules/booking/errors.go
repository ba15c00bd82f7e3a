package booking

import "errors"

var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrValidation      = errors.New("validation error")
	ErrRoomConflict    = errors.New("room already booked for the requested interval")
)
