package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/logger"
	"github.com/inkshelf/inkshelf-server/internal/service"
	"github.com/inkshelf/inkshelf-server/internal/validation"
)

// ProvideLibraryService provides the library service with seeded shelves
// and a warm search index.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*EntryIndexHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewLibraryService(storeHandle.Store, indexHandle.EntryIndex, validator, log.Logger)

	if err := svc.Bootstrap(context.Background()); err != nil {
		return nil, err
	}

	shelves, err := svc.Shelves(context.Background())
	if err != nil {
		return nil, err
	}
	log.Info("Library ready", "shelves", len(shelves))

	return svc, nil
}

// ProvideBookService provides the book search service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	client := do.MustInvoke[books.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(client, log.Logger), nil
}
