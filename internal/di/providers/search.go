package providers

import (
	"github.com/samber/do/v2"

	"github.com/inkshelf/inkshelf-server/internal/config"
	"github.com/inkshelf/inkshelf-server/internal/logger"
	"github.com/inkshelf/inkshelf-server/internal/search"
)

// EntryIndexHandle wraps the search index with shutdown capability.
type EntryIndexHandle struct {
	*search.EntryIndex
}

// Shutdown implements do.Shutdownable.
func (h *EntryIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideEntryIndex provides the Bleve search index for public entries.
func ProvideEntryIndex(i do.Injector) (*EntryIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewEntryIndex(search.Options{
		DataPath: cfg.SearchPath(),
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &EntryIndexHandle{EntryIndex: index}, nil
}
