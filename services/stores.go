package services

import "io"

// RecordStore is the slice of the database gateway the services need.
type RecordStore interface {
	Find(table string, filters map[string]string) ([]byte, error)
	Insert(table string, record interface{}) ([]byte, error)
	ListOrdered(table, column string, ascending bool) ([]byte, error)
	DeleteByID(table, id string) error
}

// ObjectStore is the slice of the storage gateway the services need.
type ObjectStore interface {
	Upload(bucket, key string, data io.Reader, contentType string) error
	Remove(bucket, key string) error
	PublicURL(bucket, key string) string
	NewKey(prefix, filename string) string
	KeyFromPublicURL(bucket, rawURL string) (string, bool)
}
