package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/httpserver"
	"storefront-gateway/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := sessionStore(cfg, logger)
	if err != nil {
		logger.Fatalf("init session store: %v", err)
	}

	backendClient := backend.New(cfg.BackendURL, &http.Client{Timeout: 30 * time.Second}, logger)
	authority := session.NewAuthority(store, cfg.SessionTTL)
	carts := cart.NewManager()
	checkout := cart.NewCheckout(carts, backendClient)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Authority: authority,
		Carts:     carts,
		Checkout:  checkout,
		Backend:   backendClient,
		Cookies:   session.CookieOptions{Secure: cfg.CookieSecure},
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// sessionStore selects Redis when configured and falls back to process
// memory otherwise. Memory is fine for one instance; carts are in-memory
// regardless, so scaling out requires sticky sessions either way.
func sessionStore(cfg config.Config, logger *log.Logger) (session.Store, error) {
	if cfg.RedisAddr == "" {
		logger.Printf("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return session.NewRedisStore(client), nil
}
