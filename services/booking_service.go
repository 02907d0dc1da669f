package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lumistudio/backend-studio/metrics"
	"github.com/lumistudio/backend-studio/models"
)

const (
	bookingsTable      = "bookings"
	bookingImageBucket = "booking-images"
	bookingKeyPrefix   = "bookings"
)

type BookingService struct {
	records  RecordStore
	objects  ObjectStore
	notifier Notifier
}

// NewBookingService creates the booking admission service. notifier may be
// nil to disable new-booking notifications.
func NewBookingService(records RecordStore, objects ObjectStore, notifier Notifier) *BookingService {
	return &BookingService{
		records:  records,
		objects:  objects,
		notifier: notifier,
	}
}

// Submit validates a booking request, checks the slot is free, stores the
// optional reference image and persists the booking.
//
// The availability check and the insert are two separate backend calls:
// two concurrent submissions for the same slot can both pass the check. A
// unique index on (date, time) in the backing schema is the only airtight
// guard; nothing in-process can close that window across replicas.
func (s *BookingService) Submit(req models.SubmitBookingRequest, asset *models.UploadedAsset) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Date == "" || req.Time == "" {
		return &ValidationError{Msg: "Please fill in all required fields."}
	}

	existing, err := s.records.Find(bookingsTable, map[string]string{
		"date": req.Date,
		"time": req.Time,
	})
	if err != nil {
		return fmt.Errorf("checking slot availability: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(existing, &rows); err != nil {
		return fmt.Errorf("decoding availability result: %w", err)
	}
	if len(rows) > 0 {
		metrics.IncBookingConflict()
		return ErrSlotTaken
	}

	record := map[string]interface{}{
		"name":                req.Name,
		"email":               req.Email,
		"phone":               req.Phone,
		"date":                req.Date,
		"time":                req.Time,
		"request":             req.Request,
		"reference_image_url": nil,
	}

	// Upload before insert so a stored booking never references a missing
	// image.
	var imageKey string
	if asset != nil {
		imageKey = s.objects.NewKey(bookingKeyPrefix, asset.Filename)
		if err := s.objects.Upload(bookingImageBucket, imageKey, bytes.NewReader(asset.Data), asset.ContentType); err != nil {
			return err
		}
		record["reference_image_url"] = s.objects.PublicURL(bookingImageBucket, imageKey)
	}

	if _, err := s.records.Insert(bookingsTable, record); err != nil {
		if imageKey != "" {
			if rmErr := s.objects.Remove(bookingImageBucket, imageKey); rmErr != nil {
				log.Printf("orphaned object %s/%s after failed insert: %v", bookingImageBucket, imageKey, rmErr)
			}
		}
		return fmt.Errorf("inserting booking: %w", err)
	}

	metrics.IncBookingCreated()

	if s.notifier != nil {
		go func() {
			if err := s.notifier.BookingCreated(req); err != nil {
				log.Printf("booking notification failed: %v", err)
			}
		}()
	}

	return nil
}

// List returns all bookings, newest first.
func (s *BookingService) List() ([]models.Booking, error) {
	data, err := s.records.ListOrdered(bookingsTable, "created_at", false)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("decoding bookings: %w", err)
	}
	return bookings, nil
}
