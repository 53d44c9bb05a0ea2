package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/config"
	"github.com/jonathan/skill-match/internal/db"
	"github.com/jonathan/skill-match/internal/server"
	"github.com/jonathan/skill-match/internal/server/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server that exposes skill extraction, classification, matching and " +
		"assessment endpoints. Sessions live in Redis when --redis-addr is set and in memory " +
		"otherwise; --database-url enables the ranking routes and result persistence.",
	RunE: runServe,
}

func init() {
	// Read through config.Load, which binds them by name
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("database-url", "", "PostgreSQL connection URL")
	serveCmd.Flags().String("redis-addr", "", "Redis address for assessment sessions, e.g. localhost:6379")
	serveCmd.Flags().Duration("session-ttl", config.Default().SessionTTL, "How long idle assessment state is kept in Redis")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	vocab, bank, err := loadData(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	deps := server.Deps{
		Vocabulary:  vocab,
		Assessments: assessment.NewService(bank, store, log),
		RateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		Logger:      log,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return err
		}
		deps.Repository = database
		log.Info("Database connected")
	} else {
		log.Warn("No database configured; ranking routes are disabled and results are not persisted")
	}

	srv, err := server.New(server.Config{Port: cfg.Port}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

// openStore picks Redis when an address is configured and memory otherwise.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (assessment.Store, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("Using in-memory assessment store")
		return assessment.NewMemoryStore(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := assessment.NewRedisStore(client, cfg.SessionTTL)
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	log.Info("Using Redis assessment store",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("session_ttl", cfg.SessionTTL),
	)
	return store, func() { _ = client.Close() }, nil
}
