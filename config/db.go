package config

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bundle-inventory.GO/core/logger"
)

// NewDB opens the configured database. MySQL is the system of record; SQLite
// serves local runs and tests.
func NewDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	logMode := gormlogger.Info
	if cfg.GormLog == "off" {
		logMode = gormlogger.Silent
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql", "":
		dialector = mysql.Open(cfg.MySQLDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(log, logMode, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}
