package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "AI"

// Config holds application configuration. Values come from the environment
// (AI_ prefixed, with the platform-wide variables bound under their plain
// names) on top of an optional config/config.yaml.
type Config struct {
	Port         int    `mapstructure:"port"`
	AllowOrigins string `mapstructure:"allow_origins"`
	DatabaseURL  string `mapstructure:"database_url"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
}

// AppConfig holds the application-wide configuration.
// This is a simple way to make config accessible globally.
var AppConfig *Config

// Load reads configuration and stores it in AppConfig.
func Load(logger zerolog.Logger) *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", 8000)
	v.SetDefault("allow_origins", "*")

	// The platform-wide variables keep their unprefixed names so one .env
	// serves the whole deployment.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")

	v.AddConfigPath("./config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal().Err(err).Msg("failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to unmarshal config")
	}

	AppConfig = &cfg
	return &cfg
}
