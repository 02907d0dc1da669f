package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumistudio/backend-studio/models"
	"github.com/lumistudio/backend-studio/services"
)

// maxUploadBytes caps a single image upload at 5MB.
const maxUploadBytes = 5 << 20

// formFile reads a multipart file field into memory. A missing field, or a
// request that is not multipart at all, yields a nil asset without error;
// the services decide whether the file was required.
func formFile(c *gin.Context, field string) (*models.UploadedAsset, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	if fileHeader.Size > maxUploadBytes {
		return nil, &services.ValidationError{Msg: "Image too large (max 5MB)."}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.UploadedAsset{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}, nil
}
