package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

func NewSupabaseClient(cfg *Config) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return client, nil
}
