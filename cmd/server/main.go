package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/bootstrap"
	"github.com/ayushkamni/desi-premium/internal/routes"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	appCtx, cleanup, err := bootstrap.Init(configPath)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// slack over the per-file limit so multipart overhead does not
		// reject a file the pipeline would accept
		BodyLimit: int(appCtx.Config.Upload.MaxSizeBytes) + 10*1024*1024,
	})
	routes.Setup(app, appCtx.Handler, appCtx.Tokens)

	go func() {
		addr := fmt.Sprintf(":%d", appCtx.Config.App.Port)
		appCtx.Log.Infof("listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			appCtx.Log.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appCtx.Log.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), appCtx.Config.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	cleanup(ctx)
	appCtx.Log.Info("shutdown completed")
}
