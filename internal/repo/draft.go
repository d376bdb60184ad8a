// Package repo contains the draft persistence backends for the trip builder.
// Each backend implements DraftRepo. No business logic lives here, only
// storage and error mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pkordes/trip-builder/internal/domain"
)

var tracer = otel.GetTracerProvider().Tracer("github.com/pkordes/trip-builder/internal/repo")

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DraftRepo is scoped key/value persistence for in-progress drafts.
// A scope is one device; keys are the fixed names in domain (programData, ...).
// Each key is independent: there are no multi-key transactions.
type DraftRepo interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if the key is absent.
	Get(ctx context.Context, scope uuid.UUID, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, scope uuid.UUID, key, value string) error

	// Delete removes the given keys. Absent keys are not an error.
	Delete(ctx context.Context, scope uuid.UUID, keys ...string) error
}

// pgDraftRepo is the Postgres implementation of DraftRepo.
type pgDraftRepo struct {
	db db
}

// NewDraftRepo constructs a DraftRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDraftRepo(db db) DraftRepo {
	return &pgDraftRepo{db: db}
}

// Get reads a single draft value.
func (r *pgDraftRepo) Get(ctx context.Context, scope uuid.UUID, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "DraftRepo.Get")
	defer span.End()
	span.SetAttributes(attribute.String("draft.key", key))

	const q = `
		SELECT value
		FROM drafts
		WHERE scope = @scope AND key = @key`

	var value string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"scope": scope, "key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("repo.DraftRepo.Get: %w", domain.ErrNotFound)
		}
		span.RecordError(err)
		return "", fmt.Errorf("repo.DraftRepo.Get: %w", err)
	}
	return value, nil
}

// Set upserts a draft value. The last write for a key wins.
func (r *pgDraftRepo) Set(ctx context.Context, scope uuid.UUID, key, value string) error {
	ctx, span := tracer.Start(ctx, "DraftRepo.Set")
	defer span.End()
	span.SetAttributes(attribute.String("draft.key", key))

	const q = `
		INSERT INTO drafts (scope, key, value)
		VALUES (@scope, @key, @value)
		ON CONFLICT (scope, key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"scope": scope,
		"key":   key,
		"value": value,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		span.RecordError(err)
		return fmt.Errorf("repo.DraftRepo.Set: %w", err)
	}
	return nil
}

// Delete removes the given keys in one statement.
func (r *pgDraftRepo) Delete(ctx context.Context, scope uuid.UUID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, span := tracer.Start(ctx, "DraftRepo.Delete")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("draft.keys", keys))

	const q = `DELETE FROM drafts WHERE scope = @scope AND key = ANY(@keys)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"scope": scope, "keys": keys}); err != nil {
		span.RecordError(err)
		return fmt.Errorf("repo.DraftRepo.Delete: %w", err)
	}
	return nil
}
