package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prasetyowira/bsqr/api"
	"github.com/prasetyowira/bsqr/config"
	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/domain/bsqr"
	"github.com/prasetyowira/bsqr/infrastructure/cache"
	appLogger "github.com/prasetyowira/bsqr/infrastructure/logger"
	"github.com/prasetyowira/bsqr/infrastructure/preset"
	"github.com/prasetyowira/bsqr/infrastructure/resource"
)

func main() {
	// Load configuration from bsqr.yaml and environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constant.MsgFailedToLoadConfig, err)
		os.Exit(1)
	}

	if err := appLogger.InitializeLevel(cfg.LogLevel, cfg.IsProduction()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constant.MsgFailedToInitLogger, err)
		os.Exit(1)
	}
	defer appLogger.Close()

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataCacheSize:   cfg.CacheSize,
			constant.DataResourceDir: cfg.ResourceDir,
			constant.DataPresetFile:  cfg.PresetFile,
			constant.DataEnvironment: cfg.Environment,
		},
	})

	var base preset.Preset
	if cfg.PresetFile != "" {
		base, err = preset.Load(cfg.PresetFile)
		if err == nil {
			// reject bad values at startup rather than on every request
			err = base.Apply(bsqr.NewDefaultRenderer())
		}
		if err != nil {
			appLogger.Fatal(constant.MsgFailedToLoadPreset, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppPreset,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPresetFile: cfg.PresetFile,
				},
			})
		}
	}

	loader := resource.NewLoader()
	if cfg.ResourceDir != "" {
		loader = resource.NewDirLoader(cfg.ResourceDir)
	}

	cacheLRU := cache.NewNamespaceLRU(cfg.CacheSize)

	// Create API handler and router
	handler := api.NewHandler(loader, base, cacheLRU)
	router := api.NewRouter(handler)
	router.SetupRoutes()

	// Configure HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}
