// Command auctiond runs the auction engine as an HTTP daemon.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/bidwell/auctiond/api"
	"github.com/bidwell/auctiond/engine"
	"github.com/bidwell/auctiond/store"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		panic("missing arguments")
	}

	initLogger(args.LogLevel)
	log := slog.Default().With("pkg", "main")

	st, closeStore, err := openStore(args.DataDir)
	if err != nil {
		log.Error("failed to open store", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	audit, closeAudit, err := openAudit(args.NATSURL)
	if err != nil {
		log.Error("failed to connect audit publisher", "err", err)
		os.Exit(1)
	}
	defer closeAudit()

	manager := engine.NewManager(engine.ManagerConfig{
		Store:         st,
		Ledger:        engine.NewSystemSource(),
		Auth:          engine.TrustAllAuthenticator{},
		Transfer:      engine.NewMemoryLedger(),
		Audit:         audit,
		EscrowAccount: args.EscrowAccount,
	})

	server := &http.Server{
		Addr:              args.ListenAddr,
		Handler:           api.New(manager, args.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	log.Info("auctiond listening", "addr", args.ListenAddr, "persistent", args.DataDir != "")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}

	log.Info("auctiond stopped")
}

func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.RFC3339,
	})
	slog.SetDefault(slog.New(handler))
}

// openStore picks LevelDB persistence when a data directory is configured,
// an in-memory store otherwise.
func openStore(dataDir string) (store.Store, func(), error) {
	if dataDir == "" {
		return store.NewMemStore(), func() {}, nil
	}

	db, err := store.OpenLevelDB(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close store", "err", err)
		}
	}, nil
}

// openAudit publishes to NATS when a broker is configured, and falls back to
// the structured log otherwise.
func openAudit(natsURL string) (engine.AuditLog, func(), error) {
	if natsURL == "" {
		return engine.NewSlogAudit(slog.Default()), func() {}, nil
	}

	audit, err := engine.NewNATSAudit(natsURL)
	if err != nil {
		return nil, nil, err
	}
	return audit, audit.Close, nil
}
