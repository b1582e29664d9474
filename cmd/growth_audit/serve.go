package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-audit/internal/cache"
	"github.com/jonathan/growth-audit/internal/config"
	"github.com/jonathan/growth-audit/internal/db"
	"github.com/jonathan/growth-audit/internal/logging"
	"github.com/jonathan/growth-audit/internal/observability"
	"github.com/jonathan/growth-audit/internal/pipeline"
	"github.com/jonathan/growth-audit/internal/server"
	"github.com/jonathan/growth-audit/internal/server/ratelimit"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for audits, comparisons and snapshot history.

Configuration is read from --config, then overlaid with environment variables
(DATABASE_URL, REDIS_URL, PORT, LOG_LEVEL, LOG_FORMAT, AUDIT_CACHE_TTL, RATE_LIMIT_PER_MINUTE).
Snapshots are disabled without DATABASE_URL and caching without REDIS_URL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := logging.WithService(logging.New(cfg.LogLevel, cfg.LogFormat), "growth-audit")
	metrics := observability.NewMetrics()

	opts := pipeline.Options{
		Logger:      logger,
		Recorder:    metrics,
		TopPosts:    cfg.TopPosts,
		TopHashtags: cfg.TopHashtags,
	}

	ctx := context.Background()
	var closers []func()

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		closers = append(closers, database.Close)
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return err
		}
		opts.Store = database
	} else {
		logger.Warn("DATABASE_URL not set, snapshots are disabled")
	}

	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			for _, fn := range closers {
				fn()
			}
			return err
		}
		closers = append(closers, func() { _ = client.Close() })
		auditCache := cache.New(client, cfg.CacheTTLDuration())
		logger.WithField("ttl", auditCache.TTL().String()).Info("Audit cache enabled")
		opts.Cache = auditCache
	} else {
		logger.Warn("REDIS_URL not set, audit cache is disabled")
	}

	srv := server.New(server.Config{
		Port:        cfg.Port,
		CORSOrigin:  cfg.CORSOrigin,
		RateLimiter: ratelimit.LoadConfig(cfg.RateLimitPerMinute),
	}, pipeline.NewAuditor(opts), metrics, logger)
	for _, fn := range closers {
		srv.OnShutdown(fn)
	}

	return srv.Start()
}
