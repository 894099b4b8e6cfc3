package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Ledger   LedgerConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LedgerConfig holds reconciliation settings.
type LedgerConfig struct {
	DefaultCompany string `mapstructure:"default_company"`
	Timezone       string
}

// Load reads configuration from file and env. Env var overrides use prefix PORTARIA_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "portaria", "portaria.db"))
	v.SetDefault("ledger.default_company", "Parceiro")
	v.SetDefault("ledger.timezone", "America/Sao_Paulo")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PORTARIA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "portaria"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PORTARIA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
