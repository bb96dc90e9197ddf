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

	"mytube-channels/infrastructure/cache"
	"mytube-channels/infrastructure/configuration"
	"mytube-channels/infrastructure/logger"
	"mytube-channels/infrastructure/persistence"
	httpHandler "mytube-channels/interfaces/http"
	"mytube-channels/server"
	"mytube-channels/usecase"

	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	db, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	if err := persistence.EnsureChannelsSchema(db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring channels schema")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable - cache entries will be re-derived on demand")
	} else {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}
	regionCache := cache.NewRegionCache(redisClient, configuration.C.Cache)

	channelRepository := persistence.NewChannelRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	playlistVideoRepository := persistence.NewPlaylistVideoRepository(db)
	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)

	channelUsecase := usecase.NewChannelUsecase(
		channelRepository,
		usecase.NewChannelConverter(userRepository),
		regionCache,
	)
	playlistUsecase := usecase.NewPlaylistUsecase(
		playlistRepository,
		usecase.NewPlaylistConverter(userRepository),
		regionCache,
	)
	playlistVideoUsecase := usecase.NewPlaylistVideoUsecase(
		playlistVideoRepository,
		usecase.NewPlaylistVideoConverter(playlistRepository, videoRepository),
		regionCache,
	)

	channelHandler := httpHandler.NewChannelHandler(channelUsecase)
	playlistHandler := httpHandler.NewPlaylistHandler(playlistUsecase)
	playlistVideoHandler := httpHandler.NewPlaylistVideoHandler(playlistVideoUsecase)

	router := server.InitiateRouter(channelHandler, playlistHandler, playlistVideoHandler)

	port := configuration.C.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
