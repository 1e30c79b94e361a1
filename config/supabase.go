package config

import (
	"errors"

	supa "github.com/nedpals/supabase-go"
)

var SupabaseClient *supa.Client

// InitSupabase builds the PostgREST client. It does not dial; the first query
// (or the connection check) is what reaches the project.
func InitSupabase(url, key string) error {
	if url == "" || key == "" {
		return errors.New("SUPABASE_URL and SUPABASE_KEY must be set")
	}
	SupabaseClient = supa.CreateClient(url, key)
	return nil
}
