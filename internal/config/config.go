package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/billinglens/billinglens/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Stripe     StripeConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

// StripeConfig carries the payment platform credentials. The secret key
// stays inside the upstream client; the publishable key is the only
// credential ever returned to a front end.
type StripeConfig struct {
	SecretKey      string `mapstructure:"secret_key" validate:"required"`
	PublishableKey string `mapstructure:"publishable_key"`
	// SchemaVersion pins the version tag applied to records fetched live
	// from the platform SDK.
	SchemaVersion types.SchemaVersion `mapstructure:"schema_version"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	// The sample servers this service replaces load credentials from a
	// .env file, so keep supporting that before viper takes over.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billinglens")

	v.SetEnvPrefix("BILLINGLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":4242")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("stripe.schema_version", types.SchemaVersionBasil)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Stripe.SchemaVersion.Validate()
}

// GetDefaultConfig returns a default configuration for local development
// and tests that never read a config file.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":4242"},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_placeholder",
			SchemaVersion: types.SchemaVersionBasil,
		},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
	}
}
