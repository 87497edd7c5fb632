package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/config"
	"github.com/inkshelf/inkshelf-server/internal/logger"
)

// ProvideBooksClient provides the book catalog client selected by configuration.
func ProvideBooksClient(i do.Injector) (books.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.Books.Provider {
	case "google":
		client := books.NewGoogleClient(cfg.Books.GoogleAPIKey, log.Logger)
		log.Info("Book catalog provider ready", "provider", client.Provider(), "keyed", cfg.Books.GoogleAPIKey != "")
		return client, nil
	case "mock":
		client := books.NewMockClient(log.Logger)
		log.Info("Book catalog provider ready", "provider", client.Provider())
		return client, nil
	default:
		return nil, fmt.Errorf("unknown books provider: %s", cfg.Books.Provider)
	}
}
