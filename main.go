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

	youtubeclient "yt-catalog/infrastructure/clients/youtube"
	"yt-catalog/infrastructure/configuration"
	"yt-catalog/infrastructure/logger"
	httpHandler "yt-catalog/interfaces/http"
	"yt-catalog/server"
	"yt-catalog/usecase"

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

	ytConfig := configuration.GetYouTubeConfig()
	youtubeClient, err := youtubeclient.NewClient(&youtubeclient.Config{
		APIKey:           ytConfig.APIKey,
		APIKeyFile:       ytConfig.APIKeyFile,
		BaseURL:          ytConfig.BaseURL,
		WatchURL:         ytConfig.WatchURL,
		Timeout:          time.Duration(ytConfig.TimeoutSeconds) * time.Second,
		DescriptionLimit: ytConfig.DescriptionLimit,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("YouTube client initialization failed")
	}

	importerUseCase := usecase.NewImporterUseCaseWithConcurrency(youtubeClient, ytConfig.FetchConcurrency)
	catalogHandler := httpHandler.NewCatalogHandler(importerUseCase)
	router := server.InitiateRouter(catalogHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", configuration.C.App.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", configuration.C.App.Port).Info("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server terminated with error")
	}
}
