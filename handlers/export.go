package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/lumistudio/backend-studio/models"
	"github.com/lumistudio/backend-studio/services"
)

type ExportHandler struct {
	bookings *services.BookingService
}

func NewExportHandler(bookings *services.BookingService) *ExportHandler {
	return &ExportHandler{bookings: bookings}
}

// Bookings handles GET /admin/bookings/export: all bookings as an Excel
// workbook, newest first.
func (h *ExportHandler) Bookings(c *gin.Context) {
	bookings, err := h.bookings.List()
	if err != nil {
		log.Printf("[ExportBookings] %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Database error",
		})
		return
	}

	buf, err := bookingsWorkbook(bookings)
	if err != nil {
		log.Printf("[ExportBookings] building workbook: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to build export",
		})
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}

func bookingsWorkbook(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Email", "Phone", "Date", "Time", "Request", "Reference image", "Created"}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, first, last, style)
	}

	for row, b := range bookings {
		values := []interface{}{
			b.Name, b.Email, b.Phone, b.Date, b.Time,
			stringOrEmpty(b.Request), stringOrEmpty(b.ReferenceImageURL),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
