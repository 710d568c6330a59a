package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultDenyList holds country and city names that, found in an address without a
// postcode, mark a bounding-box hit as a false positive. Best effort only.
var DefaultDenyList = []string{
	"united arab emirates",
	"dubai",
	"australia",
	"south africa",
	"ecuador",
	"united states",
	"usa",
	"canada",
}

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	InputPath     string `mapstructure:"INPUT_PATH"`
	OutputPath    string `mapstructure:"OUTPUT_PATH"`
	SourceTag     string `mapstructure:"SOURCE_TAG"`
	DenyListRaw   string `mapstructure:"DENY_LIST"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
	MetricsFile   string `mapstructure:"METRICS_FILE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LocationsCSV  string `mapstructure:"LOCATIONS_CSV"`
}

// LoadConfig reads app.env from path if present, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("INPUT_PATH", "data/_debug/locations_array.txt")
	v.SetDefault("OUTPUT_PATH", "data/alma/locations.csv")
	v.SetDefault("SOURCE_TAG", "alma")
	v.SetDefault("DENY_LIST", strings.Join(DefaultDenyList, ","))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("METRICS_FILE", "")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOCATIONS_CSV", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if cfg.LocationsCSV == "" {
		cfg.LocationsCSV = cfg.OutputPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects configurations the harvester cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("config: INPUT_PATH cannot be empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("config: OUTPUT_PATH cannot be empty")
	}
	if strings.TrimSpace(c.SourceTag) == "" {
		return fmt.Errorf("config: SOURCE_TAG cannot be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid LOG_FORMAT %q, expected console or json", c.LogFormat)
	}
	return nil
}

// DenyList splits DENY_LIST on commas, dropping blanks.
func (c Config) DenyList() []string {
	var terms []string
	for _, term := range strings.Split(c.DenyListRaw, ",") {
		term = strings.TrimSpace(term)
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
