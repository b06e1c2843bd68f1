package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/cli/config"
	httpctrl "github.com/secmon-lab/execdiag/pkg/controller/http"
	"github.com/secmon-lab/execdiag/pkg/service/report"
	"github.com/secmon-lab/execdiag/pkg/service/worker"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
	"github.com/secmon-lab/execdiag/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var corsOrigin string
	var sweepInterval time.Duration
	var appCfg config.App
	var repoCfg config.Repository
	var archiveCfg config.Archive
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("EXECDIAG_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "cors-origin",
			Usage:       "Access-Control-Allow-Origin value for /api routes",
			Value:       "*",
			Sources:     cli.EnvVars("EXECDIAG_CORS_ORIGIN"),
			Destination: &corsOrigin,
		},
		&cli.DurationFlag{
			Name:        "sweep-interval",
			Usage:       "Interval between idle session sweeps",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("EXECDIAG_SWEEP_INTERVAL"),
			Destination: &sweepInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, archiveCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load app configuration")
			}

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer flush()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{
				usecase.WithRenderer(report.New(report.WithBranding(cfg.ReportBranding()))),
			}

			archive, err := archiveCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if archive != nil {
				defer safe.Close(ctx, archive)
				ucOpts = append(ucOpts, usecase.WithArchive(archive))
			}

			uc := usecase.New(repo, ucOpts...)

			sweeper := worker.NewSessionSweeper(repo, cfg.SessionTTLDuration(), sweepInterval)
			if err := sweeper.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start session sweeper")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithCORSOrigin(corsOrigin)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"backend", repoCfg.Backend(),
					"session_ttl", cfg.SessionTTLDuration(),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				sweeper.Stop()
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				sweeper.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
