package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ibdesignproject/FuelUpFinal/internal/app"
)

// Config holds all configuration for the application
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Profile   ProfileConfig   `mapstructure:"profile"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// StorageConfig holds the location of the local key-value database
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"` // empty means the per-user default
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ProfileConfig holds profile defaults used when the user has not filled out the form
type ProfileConfig struct {
	DefaultSport string `mapstructure:"default_sport"`
}

// GeneratorConfig holds recipe generator settings
type GeneratorConfig struct {
	Seed uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

// Load loads configuration from an optional config file, a .env file,
// environment variables prefixed with FUELUP_, and defaults. An explicit
// configFile must exist; otherwise fuelup.yaml is searched for in the working
// directory and the per-user data directory.
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("fuelup")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := app.DefaultDataDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	// Environment variable settings; nested keys map "storage.db_path" to FUELUP_STORAGE_DB_PATH
	v.SetEnvPrefix("FUELUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.db_path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("profile.default_sport", "Basketball")
	v.SetDefault("generator.seed", 0)
}

// validate validates the configuration
func validate(config *Config) error {
	switch strings.ToLower(strings.TrimSpace(config.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got: %s", config.Log.Level)
	}

	if strings.TrimSpace(config.Profile.DefaultSport) == "" {
		return fmt.Errorf("default sport must not be empty (set FUELUP_PROFILE_DEFAULT_SPORT)")
	}

	return nil
}

// loadEnvFile loads a .env file from the working directory if one exists.
// Variables already present in the environment are left untouched.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(".env")
}
