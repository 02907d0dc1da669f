package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumistudio/backend-studio/models"
	"github.com/lumistudio/backend-studio/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Submit handles POST /book: the public booking form with an optional
// reference image.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req models.SubmitBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Please fill in all required fields.")
		return
	}

	asset, err := formFile(c, "reference_image")
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.String(http.StatusBadRequest, ve.Msg)
			return
		}
		log.Printf("[Submit] reading reference image: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.bookings.Submit(req, asset); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			c.String(http.StatusBadRequest, ve.Msg)
		case errors.Is(err, services.ErrSlotTaken):
			c.String(http.StatusBadRequest, "This date and time is already booked.")
		default:
			log.Printf("[Submit] %v", err)
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.String(http.StatusOK, "Booking successful!")
}

// List handles GET /bookings: the admin view, newest first.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List()
	if err != nil {
		log.Printf("[ListBookings] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
