package services

import "github.com/lumistudio/backend-studio/models"

// Notifier tells the studio owner about a new booking. Implementations
// must be safe for concurrent use.
type Notifier interface {
	BookingCreated(req models.SubmitBookingRequest) error
}
