// Package config loads the client settings from the environment, with an
// optional .env file, using viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Identity provider endpoints, selected by the DFX network.
const (
	MainnetIdentityProvider = "https://identity.ic0.app"
	LocalIdentityProvider   = "http://rdmx6-jaaaa-aaaaa-aaadq-cai.localhost:4943"
)

// Config holds the client settings.
type Config struct {
	LedgerURL        string        `mapstructure:"DCE_LEDGER_URL"`
	Network          string        `mapstructure:"DFX_NETWORK"`
	IdentityProvider string        `mapstructure:"DCE_IDENTITY_PROVIDER"` // overrides the network default
	Token            string        `mapstructure:"DCE_TOKEN"`             // skips the interactive login when set
	CallbackAddr     string        `mapstructure:"DCE_CALLBACK_ADDR"`
	Env              string        `mapstructure:"DCE_ENV"`
	Verbose          bool          `mapstructure:"DCE_VERBOSE"`
	HTTPTimeout      time.Duration `mapstructure:"DCE_HTTP_TIMEOUT"`
	MaxRetries       int           `mapstructure:"DCE_MAX_RETRIES"`
}

// ProviderEndpoint returns the identity provider to log in with.
func (c Config) ProviderEndpoint() string {
	if c.IdentityProvider != "" {
		return c.IdentityProvider
	}
	if c.Network == "ic" {
		return MainnetIdentityProvider
	}
	return LocalIdentityProvider
}

var keys = []string{
	"DCE_LEDGER_URL",
	"DFX_NETWORK",
	"DCE_IDENTITY_PROVIDER",
	"DCE_TOKEN",
	"DCE_CALLBACK_ADDR",
	"DCE_ENV",
	"DCE_VERBOSE",
	"DCE_HTTP_TIMEOUT",
	"DCE_MAX_RETRIES",
}

// LoadConfig reads the settings from the environment and from an optional
// .env file in path. Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("DCE_LEDGER_URL", "http://localhost:4943/api/dce")
	v.SetDefault("DFX_NETWORK", "local")
	v.SetDefault("DCE_CALLBACK_ADDR", "127.0.0.1:0")
	v.SetDefault("DCE_ENV", "development")
	v.SetDefault("DCE_HTTP_TIMEOUT", 30*time.Second)
	v.SetDefault("DCE_MAX_RETRIES", 3)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		// the .env file is optional.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, err
		}
	}

	err = v.Unmarshal(&config)
	return config, err
}
