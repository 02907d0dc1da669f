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
	galleryTable       = "gallery"
	galleryImageBucket = "gallery-images"
	galleryKeyPrefix   = "gallery"
)

type GalleryService struct {
	records RecordStore
	objects ObjectStore
}

func NewGalleryService(records RecordStore, objects ObjectStore) *GalleryService {
	return &GalleryService{
		records: records,
		objects: objects,
	}
}

// Upload stores a category-tagged image and its metadata record.
func (s *GalleryService) Upload(category string, asset *models.UploadedAsset) error {
	if category == "" || asset == nil {
		return &ValidationError{Msg: "Category and image are required."}
	}

	key := s.objects.NewKey(galleryKeyPrefix, asset.Filename)
	if err := s.objects.Upload(galleryImageBucket, key, bytes.NewReader(asset.Data), asset.ContentType); err != nil {
		return err
	}

	record := map[string]interface{}{
		"category":  category,
		"image_url": s.objects.PublicURL(galleryImageBucket, key),
	}
	if _, err := s.records.Insert(galleryTable, record); err != nil {
		if rmErr := s.objects.Remove(galleryImageBucket, key); rmErr != nil {
			log.Printf("orphaned object %s/%s after failed insert: %v", galleryImageBucket, key, rmErr)
		}
		return fmt.Errorf("inserting gallery item: %w", err)
	}

	metrics.IncGalleryUpload()
	return nil
}

// List returns all gallery items, newest first.
func (s *GalleryService) List() ([]models.GalleryItem, error) {
	data, err := s.records.ListOrdered(galleryTable, "created_at", false)
	if err != nil {
		return nil, err
	}
	var items []models.GalleryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding gallery items: %w", err)
	}
	return items, nil
}

// Delete removes a gallery record and then its stored object. An unknown
// id deletes nothing and is not an error. The storage cleanup runs after
// the record delete succeeds and is best-effort: the record is already
// gone, so a cleanup failure only leaves an orphaned object behind.
func (s *GalleryService) Delete(id string) error {
	data, err := s.records.Find(galleryTable, map[string]string{"id": id})
	if err != nil {
		return err
	}
	var items []models.GalleryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decoding gallery item: %w", err)
	}

	if err := s.records.DeleteByID(galleryTable, id); err != nil {
		return err
	}

	if len(items) > 0 {
		if key, ok := s.objects.KeyFromPublicURL(galleryImageBucket, items[0].ImageURL); ok {
			if err := s.objects.Remove(galleryImageBucket, key); err != nil {
				log.Printf("orphaned object %s/%s after record delete: %v", galleryImageBucket, key, err)
			}
		}
	}

	metrics.IncGalleryDelete()
	return nil
}
