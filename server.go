//go:build !cli
// +build !cli

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"go.uber.org/zap"

	"bundle-inventory.GO/api"
	_ "bundle-inventory.GO/api/bundle"
	_ "bundle-inventory.GO/api/graphql"
	_ "bundle-inventory.GO/api/inventory"
	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/app"
	_ "bundle-inventory.GO/custom"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}
	defer a.Close()

	e := api.NewServer(&api.Deps{
		DB:          a.DB,
		Log:         a.Log,
		Metrics:     a.Metrics,
		Bundles:     a.Bundles,
		SourceItems: a.SourceItems,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	fonts := []string{"small", "standard", "slant", "big", "doom"}
	figure.NewFigure("Bundle Inventory", fonts[rand.Intn(len(fonts))], true).Print()
	a.Log.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatal("server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Log.Error("graceful shutdown failed", zap.Error(err))
	}
	a.Log.Info("server stopped")
}
