package config

const (
	defaultStorageDriver = "sqlite"
	defaultAPIListen     = ":8080"

	defaultDeviceAURL        = "http://localhost:11434"
	defaultMainReasonerModel = "main-reasoner"
	defaultGraphBuilderModel = "graph-builder"
	defaultTimeoutSeconds    = 300
	defaultRecentMessages    = 10

	defaultEventstreamProvider = "none"
	defaultEventstreamTopic    = "fractal.node.events"

	defaultClientAPITarget = "http://localhost:8080"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Driver: defaultStorageDriver,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		LLM: LLMConfig{
			DeviceAURL:        defaultDeviceAURL,
			DeviceBURL:        defaultDeviceAURL,
			MainReasonerModel: defaultMainReasonerModel,
			GraphBuilderModel: defaultGraphBuilderModel,
			TimeoutSeconds:    defaultTimeoutSeconds,
			RecentMessages:    defaultRecentMessages,
		},
		Eventstream: EventstreamConfig{
			Provider: defaultEventstreamProvider,
			Topic:    defaultEventstreamTopic,
		},
		Client: ClientConfig{
			APITarget: defaultClientAPITarget,
		},
	}
}
