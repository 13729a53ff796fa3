package config

// Config is the resolved runtime configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig controls the logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	// Format is console or json.
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// OutputConfig controls snapshot export.
type OutputConfig struct {
	// Format is yaml or json.
	Format string `mapstructure:"format" validate:"oneof=yaml json"`
	// Path is the export destination. Empty disables export.
	Path string `mapstructure:"path"`
}

// MetricsConfig controls the metrics textfile.
type MetricsConfig struct {
	// File is where metrics are written on exit. Empty disables it.
	File string `mapstructure:"file"`
}

// Default values.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "yaml"
)

// EnvPrefix is prepended to every environment variable, e.g.
// ROLEREADY_LOG_LEVEL for log.level.
const EnvPrefix = "ROLEREADY"

// defaults lists every key so viper resolves it from the environment.
var defaults = map[string]any{
	"log.level":     DefaultLogLevel,
	"log.format":    DefaultLogFormat,
	"output.format": DefaultOutputFormat,
	"output.path":   "",
	"metrics.file":  "",
}
