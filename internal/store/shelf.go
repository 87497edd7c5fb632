package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// CreateShelf creates a new shelf in the store, keyed by shelf code.
func (s *Store) CreateShelf(_ context.Context, shelf *domain.Shelf) error {
	key := shelfKey(shelf.Code)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check shelf exists: %w", err)
	}
	if exists {
		return ErrDuplicateShelf
	}

	if err := s.set(key, shelf); err != nil {
		return fmt.Errorf("create shelf: %w", err)
	}
	return nil
}

// GetShelfByCode retrieves a shelf by its code.
func (s *Store) GetShelfByCode(_ context.Context, code string) (*domain.Shelf, error) {
	var shelf domain.Shelf
	err := s.get(shelfKey(code), &shelf)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrShelfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	return &shelf, nil
}

// ListShelves returns every shelf in the store.
func (s *Store) ListShelves(_ context.Context) ([]*domain.Shelf, error) {
	var shelves []*domain.Shelf
	err := listPrefix(s, []byte(shelfPrefix), func(val []byte) error {
		var shelf domain.Shelf
		if err := json.Unmarshal(val, &shelf); err != nil {
			return fmt.Errorf("unmarshal shelf: %w", err)
		}
		shelves = append(shelves, &shelf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	return shelves, nil
}

// CountShelves returns the number of shelves in the store.
func (s *Store) CountShelves(_ context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(shelfPrefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count shelves: %w", err)
	}
	return count, nil
}
