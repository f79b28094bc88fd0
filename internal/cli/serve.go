package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/service"
)

type serveConfig struct {
	Port string
}

func newServeCommand() *cli.Command {
	opts := &serveConfig{}

	return &cli.Command{
		Name:  "serve",
		Usage: "run the password generator HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "port",
				Usage:       "port to listen on",
				EnvVars:     []string{"PASSGEN_PORT"},
				Destination: &opts.Port,
			},
		},
		Action: func(c *cli.Context) error {
			return runServe(*opts)
		},
	}
}

func runServe(opts serveConfig) error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func newRouter() http.Handler {
	genService := service.NewGeneratorService()
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Get("/api/v1/charsets", genHandler.HandleCharsets)
	})

	return r
}
