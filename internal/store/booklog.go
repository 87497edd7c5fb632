package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// CreateBookLog stores a new book log.
func (s *Store) CreateBookLog(_ context.Context, log *domain.BookLog) error {
	if err := s.set(bookLogKey(log.ID), log); err != nil {
		return fmt.Errorf("create book log: %w", err)
	}
	return nil
}

// GetBookLog retrieves a book log by ID.
func (s *Store) GetBookLog(_ context.Context, id string) (*domain.BookLog, error) {
	var log domain.BookLog
	err := s.get(bookLogKey(id), &log)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrBookLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book log: %w", err)
	}
	return &log, nil
}

// ListBookLogs returns every book log in the store.
func (s *Store) ListBookLogs(_ context.Context) ([]*domain.BookLog, error) {
	var logs []*domain.BookLog
	err := listPrefix(s, []byte(bookLogPrefix), func(val []byte) error {
		var log domain.BookLog
		if err := json.Unmarshal(val, &log); err != nil {
			return fmt.Errorf("unmarshal book log: %w", err)
		}
		logs = append(logs, &log)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list book logs: %w", err)
	}
	return logs, nil
}
