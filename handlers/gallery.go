package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumistudio/backend-studio/models"
	"github.com/lumistudio/backend-studio/services"
)

type GalleryHandler struct {
	gallery *services.GalleryService
}

func NewGalleryHandler(gallery *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// Upload handles POST /gallery: a category-tagged image upload.
func (h *GalleryHandler) Upload(c *gin.Context) {
	category := c.PostForm("category")

	asset, err := formFile(c, "image")
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.String(http.StatusBadRequest, ve.Msg)
			return
		}
		log.Printf("[GalleryUpload] reading image: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.gallery.Upload(category, asset); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.String(http.StatusBadRequest, ve.Msg)
			return
		}
		log.Printf("[GalleryUpload] %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.String(http.StatusOK, "Gallery image uploaded")
}

// List handles GET /gallery, newest first.
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.gallery.List()
	if err != nil {
		log.Printf("[ListGallery] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /gallery/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.gallery.Delete(c.Param("id")); err != nil {
		log.Printf("[DeleteGallery] %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "Gallery image deleted")
}
