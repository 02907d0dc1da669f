package store

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// Records is the gateway to the Supabase tables. Filters are exact-match
// equality only; results come back as raw JSON for the caller to decode.
type Records struct {
	client *supa.Client
}

func NewRecords(client *supa.Client) *Records {
	return &Records{client: client}
}

func (r *Records) Find(table string, filters map[string]string) ([]byte, error) {
	query := r.client.From(table).Select("*", "", false)
	for column, value := range filters {
		query = query.Eq(column, value)
	}
	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", table, err)
	}
	return data, nil
}

func (r *Records) Insert(table string, record interface{}) ([]byte, error) {
	data, _, err := r.client.From(table).
		Insert(record, false, "", "", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}
	return data, nil
}

func (r *Records) ListOrdered(table, column string, ascending bool) ([]byte, error) {
	data, _, err := r.client.From(table).
		Select("*", "", false).
		Order(column, &postgrest.OrderOpts{Ascending: ascending}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return data, nil
}

func (r *Records) DeleteByID(table, id string) error {
	_, _, err := r.client.From(table).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete %s from %s: %w", id, table, err)
	}
	return nil
}
