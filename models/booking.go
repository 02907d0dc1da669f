package models

import "time"

type Booking struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	Phone             string    `json:"phone" db:"phone"`
	Date              string    `json:"date" db:"date"`
	Time              string    `json:"time" db:"time"`
	Request           *string   `json:"request,omitempty" db:"request"`
	ReferenceImageURL *string   `json:"reference_image_url,omitempty" db:"reference_image_url"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// SubmitBookingRequest carries the public booking form fields. The
// reference image travels separately as a multipart file.
type SubmitBookingRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Date    string `form:"date"`
	Time    string `form:"time"`
	Request string `form:"request"`
}

// UploadedAsset is an in-memory file taken from a multipart request. It
// lives for the duration of one handler call.
type UploadedAsset struct {
	Data        []byte
	ContentType string
	Filename    string
}
