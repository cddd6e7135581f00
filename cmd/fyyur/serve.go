package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/flash"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/internal/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5000, "Port to listen on (PORT)")
	serveCmd.Flags().Bool("seed", false, "Load demo data before serving (SEED_DEMO_DATA)")
	_ = settings.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = settings.BindPFlag("SEED_DEMO_DATA", serveCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	dataStore := store.New(db)

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, db); err != nil {
			return err
		}
	}

	flashes, err := flash.New(cfg.Security.SessionSecret, flash.WithSecureCookie(cfg.Security.CookieSecure))
	if err != nil {
		return fmt.Errorf("configure flash cookies: %w", err)
	}

	api := httpapi.New(
		venues.New(dataStore),
		artists.New(dataStore),
		shows.New(dataStore, time.Local),
		flashes,
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           middleware.Chain(api.Routes(), cfg.CORS.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("fyyur listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
