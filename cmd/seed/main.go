// Package main provides a tool to seed the database with sample library data.
//
// It boots the store against the configured data directory, ensures the
// shelf taxonomy exists, and writes a handful of entries and book logs so
// the library and public search have something to show.
//
// Usage:
//
//	DATA_PATH=~/Inkshelf/data go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/search"
	"github.com/inkshelf/inkshelf-server/internal/service"
	"github.com/inkshelf/inkshelf-server/internal/store"
	"github.com/inkshelf/inkshelf-server/internal/validation"
)

func main() {
	basePath := os.Getenv("DATA_PATH")
	if basePath == "" {
		basePath = os.ExpandEnv("$HOME/Inkshelf/data")
	}

	fmt.Printf("Seeding library data under: %s\n", basePath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := store.New(filepath.Join(basePath, "db"), logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	index, err := search.NewEntryIndex(search.Options{
		DataPath: filepath.Join(basePath, "search"),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	ctx := context.Background()

	library := service.NewLibraryService(s, index, validation.New(), logger)
	if err := library.Bootstrap(ctx); err != nil {
		log.Fatalf("Failed to bootstrap library: %v", err)
	}

	seedEntries(ctx, library)
	seedBookLogs(ctx, library)

	sections, err := library.Sections(ctx)
	if err != nil {
		log.Fatalf("Failed to read library back: %v", err)
	}
	fmt.Printf("Library now has %d occupied shelves\n", len(sections))
}

func seedEntries(ctx context.Context, library *service.LibraryService) {
	entries := []service.CreateEntryInput{
		{
			Title:      "Moonlit Solitude",
			Body:       "The house has gone quiet in the way only winter houses do. I sat by the window until the streetlamp became a second moon.",
			ShelfCode:  "820.20",
			Visibility: "public",
			Mood:       "wistful",
			Tags:       []string{"night", "winter"},
		},
		{
			Title:      "Letters to the Morning",
			Body:       "Three drafts of the same apology, none sent. The coffee went cold while I decided the morning deserved honesty more than polish.",
			ShelfCode:  "820.20",
			Visibility: "public",
			Mood:       "hopeful",
		},
		{
			Title:     "City of Small Echoes",
			Body:      "Notes for a longer piece about the alley behind the bookshop, where every footstep sounds borrowed from someone else's day.",
			ShelfCode: "100.20",
			Tags:      []string{"drafts"},
		},
	}

	for _, input := range entries {
		entry, err := library.CreateEntry(ctx, input)
		if err != nil {
			log.Printf("Skipping entry %q: %v", input.Title, err)
			continue
		}
		fmt.Printf("  entry   %-24s -> %s (%s)\n", entry.Title, entry.ShelfLabel, entry.Visibility)
	}
}

func seedBookLogs(ctx context.Context, library *service.LibraryService) {
	catalog := books.NewMockClient(slog.New(slog.DiscardHandler))

	logs := []struct {
		providerID string
		input      service.LogBookInput
	}{
		{
			providerID: "vol-001",
			input: service.LogBookInput{
				ShelfCode: "900.30",
				Status:    "read",
				Rating:    5,
				Review:    "Stevens' restraint made me ache. A butler's unsent life, told in what he cannot say.",
			},
		},
		{
			providerID: "vol-007",
			input: service.LogBookInput{
				ShelfCode: "100.20",
				Status:    "reading",
				Notes:     "Reading one numbered fragment each morning.",
				Quotes:    []string{"Suppose I were to begin by saying that I had fallen in love with a color."},
			},
		},
		{
			providerID: "vol-004",
			input: service.LogBookInput{
				ShelfCode: "100.20",
				Status:    "want_to_read",
			},
		},
	}

	for _, seed := range logs {
		book, err := catalog.GetBookByID(ctx, seed.providerID)
		if err != nil {
			log.Printf("Skipping book %s: %v", seed.providerID, err)
			continue
		}

		input := seed.input
		input.Book = *book

		bookLog, err := library.LogBook(ctx, input)
		if err != nil {
			log.Printf("Skipping book log %q: %v", book.Title, err)
			continue
		}
		fmt.Printf("  book    %-24s -> %s (%s)\n", bookLog.BookRef.Title, bookLog.ShelfLabel, bookLog.Status)
	}
}
