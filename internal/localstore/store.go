// Package localstore wraps the embedded key-value store holding the few
// durable records this system keeps (today: the session user).
package localstore

import (
	"errors"
	"fmt"

	"github.com/blog-platform-api/internal/config"
	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Store wraps a BadgerDB instance with additional functionality
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// New opens the local key-value store. With InMemoryStore set, nothing
// touches disk; used by tests.
func New(cfg *config.SessionConfig, log zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if cfg.InMemoryStore {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.StorePath)
	}
	// Badger's own logging is noisy at default levels; route it nowhere and
	// log lifecycle events ourselves.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	store := &Store{
		db:  db,
		log: log.With().Str("component", "localstore").Logger(),
	}

	store.log.Info().
		Str("path", cfg.StorePath).
		Bool("in_memory", cfg.InMemoryStore).
		Msg("Local store opened")

	return store, nil
}

// Get returns the value under key, or nil when the key is absent.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

// Set writes the value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting an absent key is not an
// error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
