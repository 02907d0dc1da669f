package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "booking_created_total",
			Help:      "Count of bookings accepted.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "booking_conflict_total",
			Help:      "Count of booking attempts rejected because the slot was taken.",
		},
	)

	galleryUploads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "gallery_upload_total",
			Help:      "Count of gallery images uploaded.",
		},
	)

	galleryDeletes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "gallery_delete_total",
			Help:      "Count of gallery images deleted.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, bookingConflicts, galleryUploads, galleryDeletes)
	})
}

func IncHTTPRequest(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncGalleryUpload() {
	galleryUploads.Inc()
}

func IncGalleryDelete() {
	galleryDeletes.Inc()
}
