package conf

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/kparal/dh-open/internal/catalog"
)

// Config controls the optional knobs of the launcher. Everything defaults to
// the stock behavior; most users never create a config file.
type Config struct {
	// Domain is the catalog host the list URLs point at.
	Domain string `mapstructure:"domain"`
	// Browser overrides the default-handler command used to open the tabs.
	// Empty means open / xdg-open / rundll32 depending on the platform.
	Browser string `mapstructure:"browser"`
	// Debug enables verbose logging.
	Debug bool `mapstructure:"debug"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{Domain: catalog.DefaultDomain}
}

// Load reads ~/.dh-open.yaml and DH_OPEN_* environment variables. A missing
// config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".dh-open")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix("dh_open")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("domain", catalog.DefaultDomain)
	v.SetDefault("browser", "")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
