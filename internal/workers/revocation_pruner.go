// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-motors/internal/logger"
)

// revocationPruner periodically drops revoked token ids whose tokens have
// expired anyway.
type revocationPruner struct {
	pruner   Pruner
	interval time.Duration
	logger   *logger.Logger
}

func NewRevocationPruner(pruner Pruner, interval time.Duration, logger *logger.Logger) Worker {
	return &revocationPruner{
		pruner:   pruner,
		interval: interval,
		logger:   logger,
	}
}

func (p *revocationPruner) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("starting revocation pruner")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info().Msg("revocation pruner stopped")
				return
			case <-ticker.C:
				if n := p.pruner.Prune(ctx); n > 0 {
					p.logger.Debug().Int("pruned", n).Msg("expired revocations removed")
				}
			}
		}
	}()
}
