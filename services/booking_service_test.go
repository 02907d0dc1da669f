package services

import (
	"errors"
	"testing"
	"time"

	"github.com/lumistudio/backend-studio/models"
)

func validBooking() models.SubmitBookingRequest {
	return models.SubmitBookingRequest{
		Name:  "A",
		Email: "a@x.com",
		Phone: "555",
		Date:  "2025-07-01",
		Time:  "10:00",
	}
}

func TestBookingSubmit_Validation(t *testing.T) {
	cases := map[string]func(*models.SubmitBookingRequest){
		"missing name":  func(r *models.SubmitBookingRequest) { r.Name = "" },
		"missing email": func(r *models.SubmitBookingRequest) { r.Email = "" },
		"missing phone": func(r *models.SubmitBookingRequest) { r.Phone = "" },
		"missing date":  func(r *models.SubmitBookingRequest) { r.Date = "" },
		"missing time":  func(r *models.SubmitBookingRequest) { r.Time = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			records := &fakeRecords{}
			objects := &fakeObjects{}
			svc := NewBookingService(records, objects, nil)

			req := validBooking()
			mutate(&req)

			err := svc.Submit(req, nil)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if records.calls() != 0 || objects.calls() != 0 {
				t.Error("validation failure must not reach the backend")
			}
		})
	}
}

func TestBookingSubmit_SlotTaken(t *testing.T) {
	records := &fakeRecords{findData: []byte(`[{"id":"existing"}]`)}
	objects := &fakeObjects{}
	svc := NewBookingService(records, objects, nil)

	err := svc.Submit(validBooking(), nil)
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if len(records.inserts) != 0 {
		t.Error("conflicting booking must not be inserted")
	}
	if len(records.findCalls) != 1 {
		t.Fatalf("expected one availability check, got %d", len(records.findCalls))
	}
	filters := records.findCalls[0].filters
	if filters["date"] != "2025-07-01" || filters["time"] != "10:00" {
		t.Errorf("availability check used filters %v", filters)
	}
}

func TestBookingSubmit_NoAsset(t *testing.T) {
	records := &fakeRecords{}
	objects := &fakeObjects{}
	svc := NewBookingService(records, objects, nil)

	if err := svc.Submit(validBooking(), nil); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(records.inserts) != 1 {
		t.Fatalf("expected one insert, got %d", len(records.inserts))
	}
	record := records.inserts[0].record
	if records.inserts[0].table != "bookings" {
		t.Errorf("inserted into %q", records.inserts[0].table)
	}
	if record["reference_image_url"] != nil {
		t.Errorf("reference_image_url = %v, want nil", record["reference_image_url"])
	}
	if record["name"] != "A" || record["date"] != "2025-07-01" {
		t.Errorf("unexpected record %v", record)
	}
	if len(objects.uploads) != 0 {
		t.Error("no asset was attached, nothing should be uploaded")
	}
}

func TestBookingSubmit_WithAsset(t *testing.T) {
	records := &fakeRecords{}
	objects := &fakeObjects{}
	svc := NewBookingService(records, objects, nil)

	asset := &models.UploadedAsset{
		Data:        []byte("jpeg bytes"),
		ContentType: "image/jpeg",
		Filename:    "ref.jpg",
	}
	if err := svc.Submit(validBooking(), asset); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(objects.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(objects.uploads))
	}
	up := objects.uploads[0]
	if up.bucket != "booking-images" || up.key != "bookings/fixed-ref.jpg" {
		t.Errorf("uploaded to %s/%s", up.bucket, up.key)
	}
	if string(up.data) != "jpeg bytes" || up.contentType != "image/jpeg" {
		t.Error("uploaded asset does not match the attachment")
	}

	record := records.inserts[0].record
	want := objects.PublicURL("booking-images", "bookings/fixed-ref.jpg")
	if record["reference_image_url"] != want {
		t.Errorf("reference_image_url = %v, want %q", record["reference_image_url"], want)
	}
}

func TestBookingSubmit_UploadFailureAbortsInsert(t *testing.T) {
	records := &fakeRecords{}
	objects := &fakeObjects{uploadErr: errors.New("bucket unavailable")}
	svc := NewBookingService(records, objects, nil)

	asset := &models.UploadedAsset{Data: []byte("x"), ContentType: "image/png", Filename: "a.png"}
	if err := svc.Submit(validBooking(), asset); err == nil {
		t.Fatal("expected an error")
	}
	if len(records.inserts) != 0 {
		t.Error("no booking may be inserted after a failed upload")
	}
}

func TestBookingSubmit_InsertFailureRemovesUpload(t *testing.T) {
	records := &fakeRecords{insertErr: errors.New("insert rejected")}
	objects := &fakeObjects{}
	svc := NewBookingService(records, objects, nil)

	asset := &models.UploadedAsset{Data: []byte("x"), ContentType: "image/png", Filename: "a.png"}
	if err := svc.Submit(validBooking(), asset); err == nil {
		t.Fatal("expected an error")
	}
	if len(objects.removed) != 1 || objects.removed[0] != "booking-images/bookings/fixed-a.png" {
		t.Errorf("compensating delete = %v", objects.removed)
	}
}

type chanNotifier struct {
	got chan models.SubmitBookingRequest
}

func (n *chanNotifier) BookingCreated(req models.SubmitBookingRequest) error {
	n.got <- req
	return nil
}

func TestBookingSubmit_Notifies(t *testing.T) {
	notifier := &chanNotifier{got: make(chan models.SubmitBookingRequest, 1)}
	svc := NewBookingService(&fakeRecords{}, &fakeObjects{}, notifier)

	if err := svc.Submit(validBooking(), nil); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	select {
	case req := <-notifier.got:
		if req.Date != "2025-07-01" {
			t.Errorf("notified with %v", req)
		}
	case <-time.After(time.Second):
		t.Error("notifier was not called")
	}
}

func TestBookingList(t *testing.T) {
	records := &fakeRecords{listData: []byte(`[
		{"id":"2","name":"B","created_at":"2025-06-02T10:00:00Z"},
		{"id":"1","name":"A","created_at":"2025-06-01T10:00:00Z"}
	]`)}
	svc := NewBookingService(records, &fakeObjects{}, nil)

	bookings, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records.listTable != "bookings" || records.listColumn != "created_at" || records.listAsc {
		t.Errorf("listed %s by %s asc=%v", records.listTable, records.listColumn, records.listAsc)
	}
	if len(bookings) != 2 || bookings[0].ID != "2" {
		t.Errorf("unexpected bookings %v", bookings)
	}
}
