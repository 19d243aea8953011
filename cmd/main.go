// Command league запускает API офисной спортивной лиги.
//
//	league serve
//	league migrate up|down|version
//	league seed
//
// @title AMC Champion League API
// @version 1.0
// @description Офисная спортивная лига: игры, франшизы, игроки, команды, матчи и таблица лидеров.
// @BasePath /api/v1
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Dosada05/champion-league/config"
	"github.com/Dosada05/champion-league/db"
	"github.com/Dosada05/champion-league/storage"
	"github.com/spf13/cobra"
)

const dbConnectTimeout = 5 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "league",
		Short:         "AMC Champion League API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup загружает конфигурацию и создаёт логгер; логгер становится логгером по умолчанию.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func connect(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	dbConn, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout, db.PoolOptions{}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established")
	return dbConn, nil
}

func closeDB(dbConn *sql.DB, logger *slog.Logger) {
	if err := dbConn.Close(); err != nil {
		logger.Error("failed to close database connection", slog.Any("error", err))
		return
	}
	logger.Info("database connection closed")
}

// openStore выбирает S3 или локальный каталог по USE_S3.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.BlobStore, error) {
	if cfg.Storage.UseS3 {
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			BucketName:      cfg.Storage.S3BucketName,
			Region:          cfg.Storage.S3Region,
			Endpoint:        cfg.Storage.S3Endpoint,
			AccessKeyID:     cfg.Storage.S3AccessKeyID,
			SecretAccessKey: cfg.Storage.S3SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 store: %w", err)
		}
		logger.Info("S3 blob store initialized", slog.String("bucket", cfg.Storage.S3BucketName))
		return store, nil
	}

	store, err := storage.NewLocalStore(cfg.Storage.LocalImageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}
	logger.Info("local blob store initialized", slog.String("dir", cfg.Storage.LocalImageDir))
	return store, nil
}
