package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/internal/config"
	"github.com/mmynk/docshelf/internal/export"
	"github.com/mmynk/docshelf/internal/ics"
	"github.com/mmynk/docshelf/internal/metrics"
	"github.com/mmynk/docshelf/internal/middleware"
	"github.com/mmynk/docshelf/internal/reminder"
	"github.com/mmynk/docshelf/internal/service"
	"github.com/mmynk/docshelf/internal/storage"
	"github.com/mmynk/docshelf/internal/storage/sqlite"
	"github.com/mmynk/docshelf/pkg/api/apiconnect"
	"github.com/mmynk/docshelf/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	configPath := flag.String("config", getEnv("CONFIG_PATH", "./data/config.yaml"), "path to the YAML config file")
	digest := flag.Bool("digest", false, "log the upcoming-events digest once and exit")
	flag.Parse()

	logging.Setup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(cfg, *digest); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, digestOnly bool) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath, sqlite.WithDefaultCurrency(cfg.DefaultCurrency))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()
	memo := calendar.NewMemo(store, m)

	scheduler, err := reminder.New(memo, reminder.LogNotifier{}, reminder.Options{
		Schedule:    cfg.Reminder.Schedule,
		HorizonDays: cfg.Reminder.HorizonDays,
		Location:    loc,
	})
	if err != nil {
		return err
	}

	if digestOnly {
		events, err := scheduler.RunOnce(context.Background())
		if err != nil {
			return err
		}
		slog.Info("Digest complete", "events", len(events))
		return nil
	}

	mux := newMux(store, memo, m, loc, cfg.UpcomingDays)

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Reminder.Enabled {
		scheduler.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			scheduler.Stop(stopCtx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Listen, "timezone", loc.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// newMux registers the Connect services and the plain HTTP endpoints.
func newMux(store storage.Store, memo *calendar.Memo, m *metrics.Metrics, loc *time.Location, upcomingDays int) *http.ServeMux {
	mux := http.NewServeMux()
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(slog.Default()))

	// Register Connect services
	mux.Handle(apiconnect.NewDocumentServiceHandler(service.NewDocumentService(store), interceptors))
	mux.Handle(apiconnect.NewFamilyServiceHandler(service.NewFamilyService(store), interceptors))
	mux.Handle(apiconnect.NewSettingsServiceHandler(service.NewSettingsService(store), interceptors))
	mux.Handle(apiconnect.NewCalendarServiceHandler(service.NewCalendarService(memo, loc, upcomingDays), interceptors))

	mux.Handle("GET /calendar.ics", ics.Handler(memo))
	mux.Handle("GET /export/documents.xlsx", export.Handler(store))
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		level := slog.LevelInfo
		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" || apiconnect.IsProcedure(r.URL.Path) {
			level = slog.LevelDebug
		}

		slog.Log(r.Context(), level, "Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Log(r.Context(), level, "Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", strings.Join([]string{
			"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms",
		}, ", "))
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
