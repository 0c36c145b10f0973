package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	id "clauseguard/pkg/domain"
	"clauseguard/pkg/platform/sentinel"

	"clauseguard/internal/profile/models"
)

// PostgresStore persists profiles in PostgreSQL as one JSONB document per
// user. The schema deliberately mirrors the document shape instead of
// normalizing sections: whole-profile replacement is the only write path, and
// a single row keeps it atomic without transactions spanning tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS personalization_profiles (
    user_id      TEXT PRIMARY KEY,
    version      TEXT        NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL,
    document     JSONB       NOT NULL
)`

// EnsureSchema creates the profiles table when missing. Deployments with
// managed migrations can skip this; it exists so the service is runnable
// against a fresh database.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure profile schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, profile *models.UserPersonalizationProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile document: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO personalization_profiles (user_id, version, completed_at, updated_at, document)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET version = EXCLUDED.version,
		    updated_at = EXCLUDED.updated_at,
		    document = EXCLUDED.document`,
		profile.UserID.String(), profile.Version.String(), profile.CompletedAt, profile.UpdatedAt, doc)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM personalization_profiles WHERE user_id = $1`,
		userID.String()).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var profile models.UserPersonalizationProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("decode profile document: %w", err)
	}
	return &profile, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID id.UserID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM personalization_profiles WHERE user_id = $1`, userID.String())
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
