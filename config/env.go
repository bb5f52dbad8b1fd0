package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv loads .env into the process environment. A missing .env is fine:
// variables can be set by other means.
func LoadEnv() bool {
	return godotenv.Load() == nil
}
