package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"speechwright/internal/config"
	"speechwright/internal/llm"
	"speechwright/internal/session"
	"speechwright/internal/transcript"
	"speechwright/internal/web"
)

type App struct {
	Config   config.Config
	LLM      *llm.Manager
	Sessions session.Store
	Web      *web.Handler
}

func New(_ context.Context, cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, err
	}

	mgr := llm.NewManager(cfg)
	if available := mgr.Available(); len(available) == 0 {
		log.Printf("warning: no AI provider API keys configured; generation endpoints will be unavailable")
	} else {
		log.Printf("available AI providers: %v (active: %s)", available, mgr.Active())
	}

	var sessions session.Store
	if cfg.Session.RedisURL != "" {
		redisStore, err := session.NewRedis(cfg.Session.RedisURL, cfg.Session.TTL)
		if err != nil {
			return nil, err
		}
		sessions = redisStore
	} else {
		sessions = session.NewMemory()
	}

	handler := web.NewHandler(cfg, mgr, sessions, transcript.Processor{})

	return &App{
		Config:   cfg,
		LLM:      mgr,
		Sessions: sessions,
		Web:      handler,
	}, nil
}

func (a *App) Close() error {
	if closer, ok := a.Sessions.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (a *App) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := a.Sessions.Ping(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	a.Web.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}
