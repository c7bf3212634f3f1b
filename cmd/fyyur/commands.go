package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fyyur/internal/logging"
	"fyyur/internal/migrations"
)

// newRootCmd builds the fyyur command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fyyur",
		Short: "Directory of live music venues, artists and shows",
		Long: `fyyur lists venues and artists and books shows between them.

Examples:
  # Start the web server
  fyyur serve

  # Apply the database schema
  fyyur migrate up

  # Insert the demo venues, artists and shows
  fyyur seed`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// setup loads configuration and installs the global logger.
func setup() (Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return Config{}, err
	}
	logging.SetGlobalLogger(logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}))
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedDemo = seed
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo data when the directory is empty")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(direction string, apply func(ctx context.Context, cfg Config) error) *cobra.Command {
		return &cobra.Command{
			Use:   direction,
			Short: fmt.Sprintf("Run migrations %s", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := setup()
				if err != nil {
					return err
				}
				if err := apply(cmd.Context(), cfg); err != nil {
					return err
				}
				log.Info().Str("direction", direction).Msg("migrations finished")
				return nil
			},
		}
	}

	cmd.AddCommand(
		run("up", func(ctx context.Context, cfg Config) error {
			return withMigrationDB(ctx, cfg, migrations.Up)
		}),
		run("down", func(ctx context.Context, cfg Config) error {
			return withMigrationDB(ctx, cfg, migrations.Down)
		}),
	)
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo venues, artists and shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if cfg.Store == storeMemory {
				return fmt.Errorf("seed needs a persistent store, STORE is %q", cfg.Store)
			}

			ds, closeStore, err := openDataStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			return seedDemoData(cmd.Context(), ds)
		},
	}
}
