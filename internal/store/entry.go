package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// CreateEntry stores a new entry.
func (s *Store) CreateEntry(_ context.Context, entry *domain.Entry) error {
	if err := s.set(entryKey(entry.ID), entry); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *Store) GetEntry(_ context.Context, id string) (*domain.Entry, error) {
	var entry domain.Entry
	err := s.get(entryKey(id), &entry)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns every entry in the store.
func (s *Store) ListEntries(_ context.Context) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	err := listPrefix(s, []byte(entryPrefix), func(val []byte) error {
		var entry domain.Entry
		if err := json.Unmarshal(val, &entry); err != nil {
			return fmt.Errorf("unmarshal entry: %w", err)
		}
		entries = append(entries, &entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
