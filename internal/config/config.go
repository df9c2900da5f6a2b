package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUsage marks errors caused by a missing or malformed invocation rather
// than by the environment. Callers print usage information for these.
var ErrUsage = errors.New("usage error")

// Config represents the settings for one generator run, either parsed from a
// yaml file or assembled from command line flags.
type Config struct {
	// Input is the path of the file whose bytes are embedded.
	Input string `yaml:"input"`
	// Output is the path of the generated C++ source file.
	Output string `yaml:"output"`
	// Array controls the declaration that wraps the bytes.
	Array ArrayConfig `yaml:"array"`
	// Layout controls how tokens are wrapped and annotated.
	Layout LayoutConfig `yaml:"layout"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// ArrayConfig names the generated array and the header that declares it.
type ArrayConfig struct {
	// Include is the header placed in the #include directive.
	Include string `yaml:"include"`
	// Symbol is the fully qualified name of the array definition.
	Symbol string `yaml:"symbol"`
}

// LayoutConfig configures the readability formatting of the byte tokens.
type LayoutConfig struct {
	// BytesPerGroup is the number of tokens between soft wraps.
	BytesPerGroup int `yaml:"bytes_per_group"`
	// BytesPerLine is the number of tokens after which a comment block is emitted.
	BytesPerLine int `yaml:"bytes_per_line"`
	// Indent is written at the start of every body line.
	Indent string `yaml:"indent"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

const (
	DefaultInclude       = "nmranet/NMRAnetMemoryConfig.hxx"
	DefaultSymbol        = "NMRAnet::MemoryConfig::globalCdi"
	DefaultBytesPerGroup = 15
	DefaultBytesPerLine  = 70
	DefaultIndent        = "   "
	DefaultLogLevel      = "warn"
)

// DefaultFileLogLevel applies when logs go to a file instead of stderr.
const DefaultFileLogLevel = "info"

// Load reads and parses a yaml configuration file. Defaults are not applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
// The defaults reproduce the NMRAnet global CDI declaration.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Array.Include == "" {
		config.Array.Include = DefaultInclude
	}
	if config.Array.Symbol == "" {
		config.Array.Symbol = DefaultSymbol
	}
	if config.Layout.BytesPerGroup == 0 {
		config.Layout.BytesPerGroup = DefaultBytesPerGroup
	}
	if config.Layout.BytesPerLine == 0 {
		config.Layout.BytesPerLine = DefaultBytesPerLine
	}
	if config.Layout.Indent == "" {
		config.Layout.Indent = DefaultIndent
	}
	if config.Logging.Level == "" {
		if config.Logging.Path != "" {
			config.Logging.Level = DefaultFileLogLevel
		} else {
			config.Logging.Level = DefaultLogLevel
		}
	}
}

// Validate checks the configuration for errors. Missing input or output paths
// are checked first and wrap ErrUsage.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Input == "" {
		return fmt.Errorf("%w: No input file specified", ErrUsage)
	}
	if config.Output == "" {
		return fmt.Errorf("%w: No output file specified", ErrUsage)
	}

	if strings.TrimSpace(config.Array.Symbol) == "" {
		return fmt.Errorf("array symbol cannot be empty")
	}
	if strings.ContainsAny(config.Array.Symbol, " \t\r\n[]{};") {
		return fmt.Errorf("invalid array symbol: %q", config.Array.Symbol)
	}
	if strings.TrimSpace(config.Array.Include) == "" {
		return fmt.Errorf("include path cannot be empty")
	}
	if strings.ContainsAny(config.Array.Include, "<>\r\n") {
		return fmt.Errorf("invalid include path: %q", config.Array.Include)
	}

	if config.Layout.BytesPerGroup <= 0 {
		return fmt.Errorf("bytes_per_group must be positive, got %d", config.Layout.BytesPerGroup)
	}
	if config.Layout.BytesPerLine <= 0 {
		return fmt.Errorf("bytes_per_line must be positive, got %d", config.Layout.BytesPerLine)
	}
	if strings.ContainsAny(config.Layout.Indent, "\r\n") {
		return fmt.Errorf("indent must not contain line breaks")
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}
