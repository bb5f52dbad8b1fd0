package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the process-wide configuration once LoadAppConfig has run.
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Env     string
	Port    string

	LogLevel  string
	LogFormat string

	DBDriver    string // mysql or sqlite
	MySQLDSN    string
	SQLitePath  string
	GormLog     string // off disables SQL logging
	AutoMigrate bool

	RedisAddr string
	RedisPass string

	BundleCacheTTL time.Duration
	AuditSchedule  string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = Load(viper.New())
	})
	return AppConfig
}

// Load builds a Config from environment variables, falling back to defaults.
func Load(v *viper.Viper) *Config {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "bundle-inventory")
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("mysql_port", "3306")
	v.SetDefault("sqlite_path", "bundle_inventory.db")
	v.SetDefault("bundle_cache_ttl", "5m")
	v.SetDefault("audit_schedule", "@every 1h")
	v.SetDefault("http_read_timeout", "15s")
	v.SetDefault("http_write_timeout", "15s")

	cfg := &Config{
		AppName:          v.GetString("app_name"),
		Env:              v.GetString("app_env"),
		Port:             v.GetString("port"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		DBDriver:         strings.ToLower(v.GetString("db_driver")),
		MySQLDSN:         v.GetString("mysql_dsn"),
		SQLitePath:       v.GetString("sqlite_path"),
		GormLog:          v.GetString("gorm_log"),
		AutoMigrate:      v.GetBool("auto_migrate"),
		RedisAddr:        v.GetString("redis_addr"),
		RedisPass:        v.GetString("redis_pass"),
		BundleCacheTTL:   v.GetDuration("bundle_cache_ttl"),
		AuditSchedule:    v.GetString("audit_schedule"),
		HTTPReadTimeout:  v.GetDuration("http_read_timeout"),
		HTTPWriteTimeout: v.GetDuration("http_write_timeout"),
	}
	if cfg.MySQLDSN == "" {
		cfg.MySQLDSN = buildMySQLDSN(
			v.GetString("mysql_user"),
			v.GetString("mysql_pass"),
			v.GetString("mysql_host"),
			v.GetString("mysql_port"),
			v.GetString("mysql_db"),
		)
	}
	return cfg
}

func buildMySQLDSN(user, pass, host, port, db string) string {
	return user + ":" + pass + "@tcp(" + host + ":" + port + ")/" + db + "?parseTime=true&charset=utf8mb4&loc=Local"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
