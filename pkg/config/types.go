package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent fractal configuration stored as
// config.toml in the .fractal/ directory. The TOML layout uses sections for
// logical grouping.
type Config struct {
	Version     int               `toml:"version"`
	Storage     StorageConfig     `toml:"storage"`
	API         APIConfig         `toml:"api"`
	LLM         LLMConfig         `toml:"llm"`
	Eventstream EventstreamConfig `toml:"eventstream"`
	Client      ClientConfig      `toml:"client"`
}

// StorageConfig holds storage backend settings.
type StorageConfig struct {
	// Driver selects the backend: "sqlite", "postgres", or "inmemory".
	Driver string `toml:"driver,omitempty"`

	// SQLitePath is the database file path for the sqlite driver. Empty
	// resolves to fractal.db inside the .fractal/ directory.
	SQLitePath string `toml:"sqlite_path,omitempty"`

	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string `toml:"postgres_dsn,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// LLMConfig holds generation service routing. Device A serves the main
// reasoner; device B serves the graph builder and the optional exploration
// model.
type LLMConfig struct {
	DeviceAURL        string `toml:"device_a_url,omitempty"`
	DeviceBURL        string `toml:"device_b_url,omitempty"`
	MainReasonerModel string `toml:"main_reasoner_model,omitempty"`
	GraphBuilderModel string `toml:"graph_builder_model,omitempty"`
	ExplorationModel  string `toml:"exploration_model,omitempty"`

	// TimeoutSeconds bounds a single generation call.
	TimeoutSeconds uint `toml:"timeout_seconds,omitempty"`

	// RecentMessages is the chat prompt's recent-conversation window.
	RecentMessages uint `toml:"recent_messages,omitempty"`
}

// EventstreamConfig holds outbound event streaming settings.
type EventstreamConfig struct {
	// Provider selects the backend: "none" or "kafka".
	Provider string `toml:"provider,omitempty"`

	// Brokers is a comma-separated Kafka bootstrap broker list.
	Brokers string `toml:"brokers,omitempty"`

	Topic string `toml:"topic,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to the running
// API server (e.g. fractal chat, fractal tree). Values are full URLs.
type ClientConfig struct {
	APITarget string `toml:"api_target,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.driver": {
		get: func(c *Config) string { return c.Storage.Driver },
		set: func(c *Config, v string) error { c.Storage.Driver = v; return nil },
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"storage.postgres_dsn": {
		get: func(c *Config) string { return c.Storage.PostgresDSN },
		set: func(c *Config, v string) error { c.Storage.PostgresDSN = v; return nil },
	},
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"llm.device_a_url": {
		get: func(c *Config) string { return c.LLM.DeviceAURL },
		set: func(c *Config, v string) error { c.LLM.DeviceAURL = v; return nil },
	},
	"llm.device_b_url": {
		get: func(c *Config) string { return c.LLM.DeviceBURL },
		set: func(c *Config, v string) error { c.LLM.DeviceBURL = v; return nil },
	},
	"llm.main_reasoner_model": {
		get: func(c *Config) string { return c.LLM.MainReasonerModel },
		set: func(c *Config, v string) error { c.LLM.MainReasonerModel = v; return nil },
	},
	"llm.graph_builder_model": {
		get: func(c *Config) string { return c.LLM.GraphBuilderModel },
		set: func(c *Config, v string) error { c.LLM.GraphBuilderModel = v; return nil },
	},
	"llm.exploration_model": {
		get: func(c *Config) string { return c.LLM.ExplorationModel },
		set: func(c *Config, v string) error { c.LLM.ExplorationModel = v; return nil },
	},
	"llm.timeout_seconds": {
		get: func(c *Config) string {
			if c.LLM.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.LLM.TimeoutSeconds), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for llm.timeout_seconds: %w", err)
			}
			c.LLM.TimeoutSeconds = uint(n)
			return nil
		},
	},
	"llm.recent_messages": {
		get: func(c *Config) string {
			if c.LLM.RecentMessages == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.LLM.RecentMessages), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for llm.recent_messages: %w", err)
			}
			c.LLM.RecentMessages = uint(n)
			return nil
		},
	},
	"eventstream.provider": {
		get: func(c *Config) string { return c.Eventstream.Provider },
		set: func(c *Config, v string) error { c.Eventstream.Provider = v; return nil },
	},
	"eventstream.brokers": {
		get: func(c *Config) string { return c.Eventstream.Brokers },
		set: func(c *Config, v string) error { c.Eventstream.Brokers = v; return nil },
	},
	"eventstream.topic": {
		get: func(c *Config) string { return c.Eventstream.Topic },
		set: func(c *Config, v string) error { c.Eventstream.Topic = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
}
