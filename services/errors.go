package services

import "errors"

// ErrSlotTaken means a booking already exists for the requested date and
// time.
var ErrSlotTaken = errors.New("slot already booked")

// ValidationError reports incomplete or invalid client input. Msg is safe
// to show to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
