package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shortlink/domain/services"
	"shortlink/internal/http/server"
	"shortlink/internal/logger"
	"shortlink/internal/repository"
	"shortlink/internal/repository/inmemory"
	"shortlink/internal/repository/postgres"
)

const shutdownTimeout = 10 * time.Second

var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Start the HTTP API and the public redirect endpoint.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger()
		Cfg.Warn(log)

		ctx := cmd.Context()

		var (
			userStorage repository.UserStorage
			linkStorage repository.LinkStorage
		)
		if Cfg.DatabaseDSN != "" {
			pg, err := postgres.NewStorage(ctx, Cfg.DatabaseDSN)
			if err != nil {
				log.Error().Err(err).Msg("failed to connect to postgres")
				return err
			}
			userStorage, linkStorage = pg, pg
			log.Info().Msg("using postgres storage")
		} else {
			mem := inmemory.NewStorage()
			userStorage, linkStorage = mem, mem
			log.Warn().Msg("DATABASE_DSN is empty, using in-memory storage")
		}
		defer func() {
			if err := linkStorage.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close storage")
			}
		}()

		tokens, err := services.NewTokens(Cfg.JWTSecret, Cfg.JWTExpire)
		if err != nil {
			log.Error().Err(err).Msg("failed to build token service")
			return err
		}

		auth := services.NewAuthentication(userStorage, tokens)
		shortener := services.NewShortener(linkStorage, Cfg.BaseURL)

		srv, err := server.NewServer(log, Cfg, shortener, auth)
		if err != nil {
			log.Error().Err(err).Msg("failed to build server")
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(ctx)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
			return err
		}

		log.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(RunServerCmd)
}
