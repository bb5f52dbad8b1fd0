// Package app assembles the database, logger and services shared by the HTTP
// server, the CLI and the cron scheduler.
package app

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/cache"
	"bundle-inventory.GO/core/logger"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/model"
	"bundle-inventory.GO/service/bundle"
	"bundle-inventory.GO/service/inventory"
)

type App struct {
	Config      *config.Config
	Log         *zap.Logger
	DB          *gorm.DB
	Metrics     *metrics.Metrics
	Bundles     *bundle.Service
	SourceItems *inventory.Service
}

// New opens the database described by cfg and builds the services on top of it.
func New(cfg *config.Config) (*App, error) {
	log := logger.New(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := config.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if cfg.AutoMigrate || cfg.DBDriver == "sqlite" {
		if err := model.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	if config.InitRedis(cfg) {
		log.Info("redis connected, bundle structure cache shared", zap.String("addr", cfg.RedisAddr))
	} else {
		log.Info("redis not configured or not reachable, using in-process cache")
	}

	return NewWithDB(cfg, db, log, metrics.New(true)), nil
}

// NewWithDB wires services over an already opened database.
func NewWithDB(cfg *config.Config, db *gorm.DB, log *zap.Logger, m *metrics.Metrics) *App {
	structures := bundle.NewStructureCache(config.RedisClient, cache.GetInstance(), cfg.BundleCacheTTL, log)
	bundles := bundle.NewService(db, structures, m, log)
	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		Metrics:     m,
		Bundles:     bundles,
		SourceItems: inventory.NewService(db, bundles, m, log),
	}
}

// Close releases the database and Redis connections and flushes the logger.
func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if config.RedisClient != nil {
		_ = config.RedisClient.Close()
	}
	_ = a.Log.Sync()
}
