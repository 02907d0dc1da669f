package store

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// Objects is the gateway to Supabase storage buckets.
type Objects struct {
	storage *storage_go.Client
}

func NewObjects(client *supa.Client) *Objects {
	return &Objects{storage: client.Storage}
}

func (o *Objects) Upload(bucket, key string, data io.Reader, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := storage_go.FileOptions{ContentType: &contentType}
	if _, err := o.storage.UploadFile(bucket, key, data, opts); err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (o *Objects) Remove(bucket, key string) error {
	if _, err := o.storage.RemoveFile(bucket, []string{key}); err != nil {
		return fmt.Errorf("remove %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL derives the public URL of an object. No network call is made.
func (o *Objects) PublicURL(bucket, key string) string {
	return o.storage.GetPublicUrl(bucket, key).SignedURL
}

// NewKey builds an object key from a collection prefix and the client's
// original filename. The uuid keeps simultaneous uploads of the same
// filename from colliding.
func (o *Objects) NewKey(prefix, filename string) string {
	return prefix + "/" + uuid.New().String() + "-" + sanitizeFilename(filename)
}

// KeyFromPublicURL recovers the object key from a public URL produced by
// PublicURL for the given bucket. Returns false for URLs that do not point
// into the bucket.
func (o *Objects) KeyFromPublicURL(bucket, rawURL string) (string, bool) {
	marker := "/object/public/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}
	key := rawURL[idx+len(marker):]
	if key == "" {
		return "", false
	}
	return key, true
}

func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '_'
		}
	}, base)
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "upload"
	}
	return cleaned
}
