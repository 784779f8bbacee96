package commands

import (
	"context"

	"github.com/ruminaider/readme-maker/internal/profile"
)

// Importer fetches a profile record from a remote source.
type Importer interface {
	Import(ctx context.Context, username, token string) (profile.Record, error)
}

// Import replaces the session's record with the imported one. On failure
// the session is left untouched.
func Import(ctx context.Context, imp Importer, s *Session, username, token string) error {
	rec, err := imp.Import(ctx, username, token)
	if err != nil {
		return err
	}
	s.Replace(rec)
	return nil
}
