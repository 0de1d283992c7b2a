package imgal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imgal/imgal-go/internal/native"
)

// Environment variables honored by the wrapper. IMGAL_LIBRARY is also read
// directly by the bridge, so it works without any Config plumbing.
const (
	EnvLibrary  = native.LibraryEnv
	EnvLogLevel = "IMGAL_LOG_LEVEL"
)

// Config carries the knobs for the native bridge. The zero value resolves
// the library from the embedded payload and logs at info level.
type Config struct {
	// LibraryPath points at an already-built libimgal artifact, bypassing
	// extraction of the embedded payload.
	LibraryPath string `yaml:"library_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ConfigFromEnv builds a Config from IMGAL_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		LibraryPath: os.Getenv(EnvLibrary),
		LogLevel:    os.Getenv(EnvLogLevel),
	}
}

// LoadConfig reads a YAML config file. Environment variables take
// precedence over file values.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, OpError("LoadConfig", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, OpError("LoadConfig", fmt.Errorf("parse %s: %w", path, err))
	}
	if env := ConfigFromEnv(); env.LibraryPath != "" {
		cfg.LibraryPath = env.LibraryPath
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		cfg.LogLevel = env
	}
	return cfg, nil
}

// Apply wires the config into the bridge. Must run before the first Load;
// later calls have no effect on an already-initialized bridge.
func (c Config) Apply() {
	if c.LibraryPath != "" {
		native.SetLibraryPath(c.LibraryPath)
	}
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
