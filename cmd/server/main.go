// @title           Marketplace Contracts API
// @version         1.0.0
// @description     Contract lifecycle for the services marketplace: contracts built from service paths, per-step provider acceptance, two-sided signing and realtime notifications to providers via Supabase Realtime.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/config"
	"marketplace-contracts-backend/internal/logging"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "server",
		Short:         "Marketplace contracts backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $CONFIG_FILE or config.yaml)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newRecomputeCmd())
	return root
}

// bootstrap loads configuration and builds the root logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger.With(zap.String("env", cfg.Environment)), nil
}
