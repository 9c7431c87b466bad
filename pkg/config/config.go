// Package config centralizes environment-driven settings. All keys use the
// ROSTER_ prefix (e.g. ROSTER_PORT); a .env file in the working directory or
// a parent is loaded first when present.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ROSTER"

var envReplacer = strings.NewReplacer("-", "_")

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(envReplacer)

	viper.SetDefault("port", "8000")
	viper.SetDefault("data-path", "roster.db")
	viper.SetDefault("admin-username", "admin")
}

// Load probes for a .env file in the current and parent directories.
func Load() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}
}

// Port returns the HTTP listen port.
func Port() string {
	return viper.GetString("port")
}

// DatabaseURL returns the postgres DSN, empty when running on sqlite.
func DatabaseURL() string {
	return viper.GetString("database-url")
}

// DataPath returns the sqlite file path used when no postgres DSN is set.
func DataPath() string {
	return viper.GetString("data-path")
}

// JWTSecret signs admin session tokens.
func JWTSecret() []byte {
	return []byte(viper.GetString("jwt-secret"))
}

// MasterSecret signs HMAC API keys.
func MasterSecret() string {
	return viper.GetString("master-secret")
}

// AdminUsername is the bootstrap admin account name.
func AdminUsername() string {
	return viper.GetString("admin-username")
}

// AdminPassword is the bootstrap admin password, empty to skip bootstrap.
func AdminPassword() string {
	return viper.GetString("admin-password")
}
