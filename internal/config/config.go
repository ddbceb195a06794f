package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lotworks/lotsplit/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Analysis model.AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Store    StoreConfig          `yaml:"store" mapstructure:"store"`
	Server   ServerConfig         `yaml:"server" mapstructure:"server"`
	Parcel   ParcelConfig         `yaml:"parcel" mapstructure:"parcel"`
	Relay    RelayConfig          `yaml:"relay" mapstructure:"relay"`
	Zoning   ZoningConfig         `yaml:"zoning" mapstructure:"zoning"`
	Fetch    FetchConfig          `yaml:"fetch" mapstructure:"fetch"`
	Log      LogConfig            `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "sqlite" or "postgres"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// ParcelConfig configures the city parcel lookup client.
type ParcelConfig struct {
	BaseURL      string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimitRPS float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	TimeoutSecs  int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// RelayConfig configures the CORS relay endpoint.
type RelayConfig struct {
	TimeoutSecs int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ZoningConfig points at an optional table-override file.
type ZoningConfig struct {
	OverridesPath string `yaml:"overrides_path" mapstructure:"overrides_path"`
}

// FetchConfig configures bulk downloads.
type FetchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOTSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	defaults := model.DefaultAnalysisConfig()
	v.SetDefault("analysis.max_price", defaults.MaxPrice)
	v.SetDefault("analysis.min_lot_area", defaults.MinLotArea)
	v.SetDefault("analysis.target_profit_pct", defaults.TargetProfitPct)
	v.SetDefault("analysis.renovation_budget", defaults.RenovationBudget)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "lotsplit.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("parcel.base_url", "")
	v.SetDefault("parcel.rate_limit_rps", 10)
	v.SetDefault("parcel.timeout_secs", 30)
	v.SetDefault("relay.timeout_secs", 15)
	v.SetDefault("fetch.timeout_secs", 60)
	v.SetDefault("fetch.user_agent", "lotsplit/1.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
