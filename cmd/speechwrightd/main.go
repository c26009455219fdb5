package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"speechwright/internal/app"
	"speechwright/internal/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("SW_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	appInstance, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}
	defer appInstance.Close()

	log.Printf("speechwrightd listening on %s", cfg.HTTP.Addr)
	if err := appInstance.Serve(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
