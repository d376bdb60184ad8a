package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pkordes/trip-builder/internal/domain"
)

// boltDraftRepo is the embedded bbolt implementation of DraftRepo.
// Each scope gets its own bucket named by the scope UUID bytes, so removing
// every draft of a device is a single bucket delete.
type boltDraftRepo struct {
	db *bolt.DB
}

// NewBoltDraftRepo constructs a DraftRepo backed by an open bbolt database.
// The caller owns db and closes it.
func NewBoltDraftRepo(db *bolt.DB) DraftRepo {
	return &boltDraftRepo{db: db}
}

// Get reads a single draft value. A missing bucket is the same as a missing key.
func (r *boltDraftRepo) Get(ctx context.Context, scope uuid.UUID, key string) (string, error) {
	_, span := tracer.Start(ctx, "BoltDraftRepo.Get")
	defer span.End()
	span.SetAttributes(attribute.String("draft.key", key))

	var (
		value string
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(scope[:])
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// v is only valid inside the transaction; string() copies it.
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("repo.BoltDraftRepo.Get: %w", err)
	}
	if !found {
		return "", fmt.Errorf("repo.BoltDraftRepo.Get: %w", domain.ErrNotFound)
	}
	return value, nil
}

// Set stores a draft value, creating the scope bucket on first use.
// bbolt commits are fsynced, so the value survives a process restart once Set returns.
func (r *boltDraftRepo) Set(ctx context.Context, scope uuid.UUID, key, value string) error {
	_, span := tracer.Start(ctx, "BoltDraftRepo.Set")
	defer span.End()
	span.SetAttributes(attribute.String("draft.key", key))

	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(scope[:])
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("repo.BoltDraftRepo.Set: %w", err)
	}
	return nil
}

// Delete removes the given keys in one transaction.
func (r *boltDraftRepo) Delete(ctx context.Context, scope uuid.UUID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, span := tracer.Start(ctx, "BoltDraftRepo.Delete")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("draft.keys", keys))

	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(scope[:])
		if b == nil {
			return nil
		}
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("repo.BoltDraftRepo.Delete: %w", err)
	}
	return nil
}
