package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/bookkeep/money"
)

// Config represents the configuration of the money tooling.
// Values are read from an optional YAML file and overridden by environment
// variables, which may themselves come from a .env file.
type Config struct {
	// DefaultCurrency is the code of the default commodity of the registry
	DefaultCurrency string `env:"MONEY_DEFAULT_CURRENCY" env-default:"USD" yaml:"defaultCurrency"`
	// Locale is the BCP 47 tag of the default locale
	Locale string `env:"MONEY_LOCALE" env-default:"en-US" yaml:"locale"`
	// LogLevel is the minimum level of log messages
	LogLevel string `env:"MONEY_LOG_LEVEL" env-default:"info" yaml:"logLevel"`
	// Commodities are registered in addition to the ISO 4217 currencies
	Commodities []money.CommodityDef `yaml:"commodities"`
}

// Load reads the configuration from the YAML file at configPath, if it is
// not empty, and from the environment.
func Load(configPath string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Tag returns the parsed default locale.
func (c *Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Registry builds the commodity registry described by the configuration.
func (c *Config) Registry(log zerolog.Logger) (*money.Registry, error) {
	tag, err := c.Tag()
	if err != nil {
		return nil, err
	}
	reg, err := money.NewRegistry(
		money.WithCommodities(c.Commodities...),
		money.WithDefault(c.DefaultCurrency),
		money.WithLocale(tag),
		money.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build registry: %w", err)
	}
	return reg, nil
}
