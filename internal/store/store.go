package store

import (
	"context"
	"time"

	"github.com/farhanashraf/domain-assistants/internal/models"
)

// Entry is one pipeline invocation's transcript record.
type Entry struct {
	ID        string
	Domain    string
	Query     string
	Outcome   models.Outcome
	Reply     string
	CreatedAt time.Time
}

// TranscriptStore persists transcript entries. Save failures must not affect
// the user-facing reply; callers log and continue.
type TranscriptStore interface {
	Save(ctx context.Context, entry Entry) error
}

// NopStore is used when no database is configured.
type NopStore struct{}

func (NopStore) Save(ctx context.Context, entry Entry) error {
	return nil
}
