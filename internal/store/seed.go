package store

import (
	"context"
	"fmt"
	"time"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	"github.com/inkshelf/inkshelf-server/internal/id"
	"github.com/inkshelf/inkshelf-server/internal/taxonomy"
)

// SeedShelves populates the shelf catalog on first run. The official
// shelves plus the starter set are created for ownerID; an already
// populated store is left untouched.
func (s *Store) SeedShelves(ctx context.Context, ownerID string) error {
	count, err := s.CountShelves(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	seed := func(code, label string, official bool) error {
		shelfID, err := id.Generate("shelf")
		if err != nil {
			return fmt.Errorf("generate shelf id: %w", err)
		}

		shelf := &domain.Shelf{
			ID:         shelfID,
			Code:       code,
			Label:      label,
			AisleCode:  taxonomy.AisleCodeOf(code),
			OwnerID:    ownerID,
			IsOfficial: official,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return s.CreateShelf(ctx, shelf)
	}

	for _, sd := range taxonomy.OfficialShelfSeeds() {
		if err := seed(sd.Code, sd.Label, true); err != nil {
			return fmt.Errorf("seed official shelf %s: %w", sd.Code, err)
		}
	}
	for _, sd := range taxonomy.StarterShelfSeeds() {
		if err := seed(sd.Code, sd.Label, false); err != nil {
			return fmt.Errorf("seed starter shelf %s: %w", sd.Code, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded shelf catalog",
			"official", len(taxonomy.OfficialShelfSeeds()),
			"starter", len(taxonomy.StarterShelfSeeds()))
	}
	return nil
}
