package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"travelcms/cmd/fx/account_fx"
	"travelcms/cmd/fx/config_fx"
	"travelcms/cmd/fx/controllers_fx"
	"travelcms/cmd/fx/dashboard_fx"
	"travelcms/cmd/fx/db_fx"
	"travelcms/cmd/fx/itinerary_fx"
	"travelcms/cmd/fx/site_fx"
	"travelcms/cmd/fx/storage_fx"
	"travelcms/cmd/fx/trip_fx"
	"travelcms/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			config_fx.Module,
			db_fx.Module,
			storage_fx.Module,
			account_fx.Module,
			trip_fx.Module,
			itinerary_fx.Module,
			site_fx.Module,
			dashboard_fx.Module,
			controllers_fx.Module,

			fx.Provide(ProvideRouter),
			fx.Invoke(StartServer),
			fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
				return &fxevent.ZapLogger{Logger: logger.Named("fx")}
			}),
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
