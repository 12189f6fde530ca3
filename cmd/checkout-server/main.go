package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/service"
	"github.com/donfermin/bakery-checkout/internal/checkout/infra/adapters/mail"
	"github.com/donfermin/bakery-checkout/internal/checkout/infra/adapters/sheets"
	"github.com/donfermin/bakery-checkout/internal/checkout/infra/adapters/sqlite"
	"github.com/donfermin/bakery-checkout/internal/checkout/infra/config"
	"github.com/donfermin/bakery-checkout/internal/checkout/infra/httpx"
	"github.com/donfermin/bakery-checkout/internal/pkg/telemetry"
	"github.com/donfermin/bakery-checkout/web"
)

// orderStore is what both backing stores provide: the catalog read side and
// the ledger append side, over one long-lived handle.
type orderStore interface {
	ports.CatalogSource
	ports.OrderLedger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	telemetry.InitLogger()

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("cannot reach the catalog source, refusing to start", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	notifier := mail.NewNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.OwnerEmail)
	processor := service.NewProcessor(
		service.NewValidator(store),
		service.NewSimulatedGateway(),
		service.NewFinalizer(notifier, store),
	)

	handler := httpx.NewHandler(processor)
	router := httpx.NewRouter(handler, web.Static())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("checkout server listening", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

// openStore builds the configured store. Both constructors verify the store
// is usable before returning, which is what makes startup fail fast when the
// source of truth is unreachable.
func openStore(ctx context.Context, cfg *config.Config) (orderStore, func(), error) {
	switch cfg.StoreDriver {
	case "sheets":
		st, err := sheets.Connect(ctx, cfg.GoogleSheetID, cfg.GoogleCredentialsPath, cfg.CatalogSheetName, cfg.OrdersSheetName)
		if err != nil {
			return nil, nil, err
		}
		return st, func() {}, nil
	case "sqlite":
		st, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
