package services

import (
	"errors"
	"io"
	"strings"
)

type findCall struct {
	table   string
	filters map[string]string
}

type insertCall struct {
	table  string
	record map[string]interface{}
}

type fakeRecords struct {
	findData  []byte
	findErr   error
	insertErr error
	listData  []byte
	listErr   error
	deleteErr error

	findCalls  []findCall
	inserts    []insertCall
	listTable  string
	listColumn string
	listAsc    bool
	listCalls  int
	deletedIDs []string
}

func (f *fakeRecords) Find(table string, filters map[string]string) ([]byte, error) {
	f.findCalls = append(f.findCalls, findCall{table: table, filters: filters})
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findData == nil {
		return []byte(`[]`), nil
	}
	return f.findData, nil
}

func (f *fakeRecords) Insert(table string, record interface{}) ([]byte, error) {
	m, ok := record.(map[string]interface{})
	if !ok {
		return nil, errors.New("fake expects map records")
	}
	f.inserts = append(f.inserts, insertCall{table: table, record: m})
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return []byte(`[{}]`), nil
}

func (f *fakeRecords) ListOrdered(table, column string, ascending bool) ([]byte, error) {
	f.listCalls++
	f.listTable = table
	f.listColumn = column
	f.listAsc = ascending
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listData == nil {
		return []byte(`[]`), nil
	}
	return f.listData, nil
}

func (f *fakeRecords) DeleteByID(table, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeRecords) calls() int {
	return len(f.findCalls) + len(f.inserts) + f.listCalls + len(f.deletedIDs)
}

type uploadCall struct {
	bucket      string
	key         string
	data        []byte
	contentType string
}

type fakeObjects struct {
	uploadErr error
	removeErr error

	uploads []uploadCall
	removed []string
}

func (f *fakeObjects) Upload(bucket, key string, data io.Reader, contentType string) error {
	body, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.uploads = append(f.uploads, uploadCall{bucket: bucket, key: key, data: body, contentType: contentType})
	return f.uploadErr
}

func (f *fakeObjects) Remove(bucket, key string) error {
	f.removed = append(f.removed, bucket+"/"+key)
	return f.removeErr
}

func (f *fakeObjects) PublicURL(bucket, key string) string {
	return "https://proj.supabase.test/storage/v1/object/public/" + bucket + "/" + key
}

func (f *fakeObjects) NewKey(prefix, filename string) string {
	return prefix + "/fixed-" + filename
}

func (f *fakeObjects) KeyFromPublicURL(bucket, rawURL string) (string, bool) {
	marker := "/object/public/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}
	return rawURL[idx+len(marker):], true
}

func (f *fakeObjects) calls() int {
	return len(f.uploads) + len(f.removed)
}
