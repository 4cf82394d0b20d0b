package configs

import (
	"fmt"
	"strings"

	"notify-digest/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "DIGEST"

// LoadConfig reads configuration from file, applies DIGEST_* environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// DIGEST_DISPATCH_ENDPOINT_URL -> dispatch.endpoint_url
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults registers every dispatch key so AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("dispatch.buffering_enabled", true)
	v.SetDefault("dispatch.debounce_seconds", 10)
	v.SetDefault("dispatch.max_buffer_age_seconds", 0)
	v.SetDefault("dispatch.max_events_per_dispatch", 0)
	v.SetDefault("dispatch.endpoint_url", "")
	v.SetDefault("dispatch.display_name", "")
	v.SetDefault("dispatch.server_name", "")
	v.SetDefault("dispatch.timeout_seconds", 10)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// "Config.Dispatch.EndpointURL" -> "dispatch.endpointurl"
	if parts := strings.Split(e.StructNamespace(), "."); len(parts) >= 2 {
		field = strings.ToLower(strings.Join(parts[1:], "."))
	}

	switch e.Tag() {
	case "required", "url":
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	case "min", "max", "gte", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
