package models

import "time"

type GalleryItem struct {
	ID        string    `json:"id" db:"id"`
	Category  string    `json:"category" db:"category"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
