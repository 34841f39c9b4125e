package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment overrides, e.g. CONSOLE_SERVER_HTTPPORT.
const envPrefix = "CONSOLE"

// configKeys lists every viper key so environment-only overrides are picked
// up even without a config file present.
var configKeys = []string{
	"logLevel",
	"logFormat",
	"server.mode",
	"server.address",
	"server.httpPort",
	"server.staticsFolder",
	"server.tlsHosts",
	"server.metricsEnabled",
	"backend.url",
	"backend.tokenFile",
	"backend.readinessTimeout",
	"auth.enabled",
	"auth.jwtSecretFile",
	"notifications.bufferSize",
	"notifications.natsUrl",
	"notifications.natsSubject",
}

// Load builds the configuration from defaults, an optional YAML file and
// CONSOLE_* environment variables, in increasing order of precedence.
func Load(path string) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	return cfg, nil
}
