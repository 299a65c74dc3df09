package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/services"
	"marketplace-contracts-backend/internal/supabase"
)

func newRecomputeCmd() *cobra.Command {
	var contractID string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Re-derive a contract's work and signature status from its steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(contractID)
			if err != nil {
				return fmt.Errorf("invalid --contract: %w", err)
			}

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}
			dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbClient.Close()

			dispatcher := services.NewDispatcher(logger, cfg.NotifyTimeout)
			defer dispatcher.Wait()
			notifier := services.NewNotifier(dbClient, nil, dispatcher, logger)
			svc := services.NewContractService(dbClient, notifier, nil, dispatcher, logger, cfg.ClientFeedWindow())

			view, err := svc.Recompute(cmd.Context(), id)
			if err != nil {
				return err
			}

			logger.Info("contract recomputed",
				zap.String("contract_id", id.String()),
				zap.String("work_status", string(view.Contract.WorkStatus)),
				zap.String("signature_status", string(view.Contract.SignatureStatus)),
				zap.Int64("version", view.Contract.Version),
				zap.Bool("needs_attention", view.NeedsAttention),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&contractID, "contract", "", "contract id")
	_ = cmd.MarkFlagRequired("contract")
	return cmd
}
