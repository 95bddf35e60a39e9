package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists transcripts in a transcripts table.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{Pool: pool}, nil
}

func (s *PostgresStore) Save(ctx context.Context, entry Entry) error {
	query := `
	INSERT INTO transcripts (id, domain, query, outcome, reply, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.Pool.Exec(ctx, query,
		entry.ID, entry.Domain, entry.Query, string(entry.Outcome), entry.Reply, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save transcript %s: %w", entry.ID, err)
	}

	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.Pool.Close()
}
