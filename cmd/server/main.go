package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/adapter/driven/gateway/ws"
	"github.com/voxlink/relay/internal/adapter/driven/notify/fcm"
	"github.com/voxlink/relay/internal/adapter/driven/notify/nop"
	redisstore "github.com/voxlink/relay/internal/adapter/driven/presence/redis"
	handler "github.com/voxlink/relay/internal/adapter/driving/http"
	"github.com/voxlink/relay/internal/config"
	"github.com/voxlink/relay/internal/core/port"
	"github.com/voxlink/relay/internal/core/service"
)

func main() {
	w := zerolog.ConsoleWriter{Out: os.Stdout}
	l := zerolog.New(w).With().Timestamp().Caller().Logger()
	zlog.Logger = l

	cfg := config.Load()
	ctx := context.Background()

	redisClient, err := redisstore.NewClient(ctx, cfg.RedisURL, cfg.RedisDB)
	if err != nil {
		l.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	store := redisstore.NewStore(redisClient)

	var notifier port.PushNotifier
	if cfg.FCMCredentials != "" {
		fcmNotifier, err := fcm.NewNotifier(ctx, cfg.FCMCredentials, cfg.FCMProjectID)
		if err != nil {
			l.Fatal().Err(err).Msg("Failed to initialize FCM")
		}
		notifier = fcmNotifier
	} else {
		l.Warn().Msg("FCM_CREDENTIALS_FILE not set, push wakeups disabled")
		notifier = nop.NewNotifier()
	}

	hub := ws.NewHub()
	registry := service.NewRegistry(store)
	router := service.NewRouter(registry, hub, notifier)
	keywords := service.NewKeywordFilter(cfg.Keywords, hub)
	h := handler.NewHandler(registry, router, keywords, hub)

	go hub.Run()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.NewRouter(),
	}

	go func() {
		l.Info().Str("addr", cfg.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	l.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("Server forced to shutdown")
	}

	hub.Stop()
	l.Info().Msg("Server exited")
}
