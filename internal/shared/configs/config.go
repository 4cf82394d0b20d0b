package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
}

// DispatchConfig controls buffering and delivery to the sink. It is read once at startup
// and never changes for the lifetime of the coordinator.
type DispatchConfig struct {
	// BufferingEnabled false sends every event on its own.
	BufferingEnabled bool `mapstructure:"buffering_enabled"`
	// DebounceSeconds <= 0 disables buffering as well.
	DebounceSeconds float64 `mapstructure:"debounce_seconds"`
	// MaxBufferAgeSeconds caps the debounce delay when > 0.
	MaxBufferAgeSeconds float64 `mapstructure:"max_buffer_age_seconds" validate:"gte=0"`
	// MaxEventsPerDispatch <= 0 means unlimited.
	MaxEventsPerDispatch int `mapstructure:"max_events_per_dispatch"`

	// EndpointURL may be empty; every flush is then skipped with a diagnostic.
	EndpointURL string `mapstructure:"endpoint_url" validate:"omitempty,url"`
	DisplayName string `mapstructure:"display_name"`
	ServerName  string `mapstructure:"server_name"`

	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"min=1"`
}
