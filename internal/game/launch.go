package game

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/cavemap/internal/config"
	"github.com/samdwyer/cavemap/internal/logging"
	"github.com/samdwyer/cavemap/internal/telemetry"
)

// Launch wires configuration, logging and telemetry, then runs a session in
// the given mode. It returns the process exit code.
func Launch(component string, mode Mode, args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", component, err)
		return 1
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", component, err)
		return 1
	}
	defer closer.Close()

	for _, w := range cfg.Warnings {
		log.Warn(w)
	}
	log.WithFields(logrus.Fields{
		"component":   component,
		"seed":        cfg.Seed,
		"seed_source": cfg.SeedSource.String(),
		"width":       cfg.Width,
		"height":      cfg.Height,
	}).Info("starting")

	ctx := context.Background()

	if telemetry.ConfigureHoneycombEnv(cfg.HoneycombAPIKey, cfg.HoneycombDataset) {
		shutdown, err := telemetry.Setup(ctx, component)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := New(cfg, mode, log)
	if err != nil {
		log.WithError(err).Error("failed to initialize")
		return 1
	}

	restore := logging.Detach(log)
	err = g.Run(ctx)
	restore()

	if err != nil {
		log.WithError(err).Error("session failed")
		return 1
	}
	// The seed is printed so a map can be regenerated later.
	fmt.Printf("seed %d\n", cfg.Seed)
	return 0
}
