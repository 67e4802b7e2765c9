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

	"github.com/aatumaykin/croncal/internal/api"
	"github.com/aatumaykin/croncal/internal/config"
	"github.com/aatumaykin/croncal/internal/job"
	"github.com/aatumaykin/croncal/internal/logger"
)

var (
	serveConfigPath string
	serveLogLevel   string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the estimate API (main command)",
	Long: `Start the croncal HTTP server with the specified configuration.
It loads the job-definition file once, then serves per-day occurrence
estimates to the calendar UI until interrupted.`,
	Run: serveHandler,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to configuration file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "override logging level")
}

func serveHandler(cmd *cobra.Command, args []string) {
	configPath := serveConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if serveLogLevel != "" {
		cfg.Logging.Level = serveLogLevel
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", e)
		}
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	jobs, err := job.Load(cfg.Jobs.Path)
	if err != nil {
		log.Error("failed to load jobs", err, logger.Field{Key: "path", Value: cfg.Jobs.Path})
		os.Exit(1)
	}

	// Reject bad schedules at startup rather than per request.
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			log.Error("invalid job definition", err)
			os.Exit(1)
		}
	}

	var metrics *api.Metrics
	if cfg.Metrics.Enabled {
		metrics = api.NewMetrics(cfg.Metrics.Namespace, nil)
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Listen,
		Handler: api.NewServer(log, jobs, metrics).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("croncal server started",
			logger.Field{Key: "listen", Value: cfg.HTTP.Listen},
			logger.Field{Key: "jobs", Value: len(jobs)},
			logger.Field{Key: "version", Value: Version})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", err)
		os.Exit(1)
	}
}
