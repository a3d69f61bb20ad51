/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zherve/ginvelope/internal/api"
	"github.com/zherve/ginvelope/internal/config"
	"github.com/zherve/ginvelope/internal/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use: "serve",
	Run: func(_ *cobra.Command, _ []string) {
		// Initialize Config
		config.InitConfig(cfgFile)

		// Initialize Logger first
		logger.InitLogger(logger.Environment(config.Cfg.App.Environment), config.Cfg.Log.Level)
		defer logger.Sync()
		logger.L.Info("Starting ginvelope demo server...")

		r := api.SetupRouter()

		addr := fmt.Sprintf("%s:%d", config.Cfg.Server.Host, config.Cfg.Server.Port)
		logger.L.Info("Server starting", zap.String("address", addr))

		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.L.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Wait for interrupt signal to gracefully shutdown the server
		// with a timeout of 5 seconds.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.L.Info("Shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.L.Fatal("Server forced to shutdown", zap.Error(err))
		}

		logger.L.Info("Server exiting")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
