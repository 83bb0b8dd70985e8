package workers

import (
	"context"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers required by the selected storages.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if storages != nil && storages.MemoryRevocations != nil && cfg.RevocationPruneInterval > 0 {
		w.workers = append(w.workers, NewRevocationPruner(storages.MemoryRevocations, cfg.RevocationPruneInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
