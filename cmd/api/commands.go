package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"goodwill/internal/config"
	"goodwill/internal/infra/db"
	"goodwill/internal/infra/payment"
	"goodwill/internal/logger"
	"goodwill/internal/server"
	"goodwill/internal/usecase"

	"github.com/spf13/cobra"
)

// goodwill [serve|migrate]。サブコマンドなしはserve
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "goodwill",
		Short:         "goodwill store API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			//DB接続
			gormDB, err := db.Connect(cfg)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			if err := db.Migrate(gormDB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			//キーがなければ決済インテントは使えない
			var processor usecase.PaymentProcessor
			if cfg.StripeSecretKey != "" {
				processor = payment.NewStripeProcessor(cfg.StripeSecretKey)
			} else {
				log.Warn("STRIPE_SECRET_KEY is empty; payment intents are disabled")
			}

			e := server.Build(cfg, gormDB, processor, &uuidGenerator{}, &realClock{}, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Start(ctx, e, cfg.Addr(), log)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "create tables and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			gormDB, err := db.Connect(cfg)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			if err := db.Migrate(gormDB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			log.Info("migration finished")
			return nil
		},
	}
}

func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	log := logger.New(cfg.GoEnv)
	//handlerの5xxログはslog.Defaultを使う
	slog.SetDefault(log)
	return cfg, log, nil
}

