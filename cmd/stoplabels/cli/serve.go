package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/stoplabels/internal/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the upload form and label endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				slog.Default().Error("load config", slog.Any("error", err))
				return err
			}
			logger := app.NewLogger(cfg)

			handlers, err := app.Build(cfg, logger)
			if err != nil {
				logger.Error("build application", slog.Any("error", err))
				return err
			}

			servers := []*http.Server{{
				Addr:         cfg.AppAddr,
				Handler:      handlers.Public,
				ReadTimeout:  cfg.AppReadTimeout,
				WriteTimeout: cfg.AppWriteTimeout,
			}}
			if cfg.OpsAddr != "" {
				servers = append(servers, &http.Server{
					Addr:         cfg.OpsAddr,
					Handler:      handlers.Ops,
					ReadTimeout:  cfg.AppReadTimeout,
					WriteTimeout: cfg.AppWriteTimeout,
				})
			}

			if err := app.Serve(cmd.Context(), logger, servers...); err != nil {
				logger.Error("http server", slog.Any("error", err))
				return err
			}
			return nil
		},
	}
}
