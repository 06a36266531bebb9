package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thruflo/guess/internal/config"
	"github.com/thruflo/guess/internal/game"
	"github.com/thruflo/guess/internal/logging"
	"github.com/thruflo/guess/internal/random"
)

type playOptions struct {
	configPath string
	seed       int64
	logLevel   string
}

// resolveConfig layers the config file, GUESS_* environment variables
// and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *playOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))

	rng, seed, err := random.NewRNG(cfg.Seed)
	if err != nil {
		return fmt.Errorf("failed to seed number generator: %w", err)
	}
	logger.Debug("seeded number generator", "seed", seed)

	secret := game.NewSecret(rng, cfg.Range)

	g := game.New(secret, cmd.InOrStdin(), cmd.OutOrStdout(),
		game.WithLogger(logger),
		game.WithRange(cfg.Range),
	)
	return g.Run()
}
