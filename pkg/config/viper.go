package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fractalhq/fractal/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the FRACTAL_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (FRACTAL_API_LISTEN, FRACTAL_LLM_DEVICE_A_URL, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery via dotdir resolution.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: FRACTAL_API_LISTEN, FRACTAL_STORAGE_DRIVER, etc.
	v.SetEnvPrefix("FRACTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Storage
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)
	v.SetDefault("storage.postgres_dsn", d.Storage.PostgresDSN)

	// API
	v.SetDefault("api.listen", d.API.Listen)

	// LLM
	v.SetDefault("llm.device_a_url", d.LLM.DeviceAURL)
	v.SetDefault("llm.device_b_url", d.LLM.DeviceBURL)
	v.SetDefault("llm.main_reasoner_model", d.LLM.MainReasonerModel)
	v.SetDefault("llm.graph_builder_model", d.LLM.GraphBuilderModel)
	v.SetDefault("llm.exploration_model", d.LLM.ExplorationModel)
	v.SetDefault("llm.timeout_seconds", d.LLM.TimeoutSeconds)
	v.SetDefault("llm.recent_messages", d.LLM.RecentMessages)

	// Eventstream
	v.SetDefault("eventstream.provider", d.Eventstream.Provider)
	v.SetDefault("eventstream.brokers", d.Eventstream.Brokers)
	v.SetDefault("eventstream.topic", d.Eventstream.Topic)

	// Client
	v.SetDefault("client.api_target", d.Client.APITarget)
}
