package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/internal/server"
	"github.com/goliatone/go-formtemplate/internal/storage"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the /form-templates HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.LoadConfig()
			if port != "" {
				cfg.Port = port
			}
			logger := server.NewLogger(cfg.Production())

			var store storage.Store
			if cfg.DatabaseDSN != "" {
				gormStore, err := storage.OpenGorm(cfg.DatabaseDSN)
				if err != nil {
					return err
				}
				store = gormStore
				logger.Info("using mysql store")
			} else {
				store = storage.NewMemory()
				logger.Warn("no DATABASE_DSN set, documents are kept in memory")
			}

			logger.WithField("port", cfg.Port).Info("listening")
			return server.New(cfg, store, logger).Run(cfg.Port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}
