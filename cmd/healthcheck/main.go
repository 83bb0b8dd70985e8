// Command healthcheck probes a running server and exits non-zero when it is
// unhealthy. It is meant for container HEALTHCHECK instructions.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-motors/internal/adapter"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/caarlos0/env/v11"
)

type probeConfig struct {
	Address string        `env:"SERVER_ADDRESS"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT"`
	Path    string        `env:"HEALTHCHECK_PATH"`
}

func main() {
	log := logger.NewLogger("go-motors-healthcheck", false)

	cfg := probeConfig{Address: ":5500", Timeout: 3 * time.Second, Path: "/"}
	flag.StringVar(&cfg.Address, "a", cfg.Address, "server address")
	flag.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "request timeout")
	flag.StringVar(&cfg.Path, "p", cfg.Path, "page to request in addition to /version")
	flag.Parse()

	// env wins over flags, like the server config
	if err := env.Parse(&cfg); err != nil {
		log.Err(err).Msg("error parsing env")
		os.Exit(1)
	}

	site, err := adapter.NewHTTPSiteAdapter(cfg.Address, cfg.Timeout, log)
	if err != nil {
		log.Err(err).Msg("error creating adapter")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout)
	defer cancel()

	version, err := site.Version(ctx)
	if err != nil {
		log.Err(err).Str("address", cfg.Address).Msg("version check failed")
		os.Exit(1)
	}

	if err := site.Ping(ctx, cfg.Path); err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("page check failed")
		os.Exit(1)
	}

	log.Info().Str("version", version).Msg("server is healthy")
}
