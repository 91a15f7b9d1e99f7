// Package ngcconfig holds interpreter-wide defaults that live outside any
// one program: the NIST-default unit system and plane, the numbered
// parameter persistence file paramstore reads and writes, and
// display/service settings for the stepper and monitor. The stepper and
// monitor packages do not read this Config themselves; cmd/ngcdemo passes
// ParamFile to paramstore and Monitor.ListenAddr to monitor.NewServer.
package ngcconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the interpreter's persisted configuration.
type Config struct {
	// Interpreter settings: the startup unit system and plane, which
	// RS274/NGC leaves to the implementation, and the parameter file
	// path. state.New does not read DefaultUnits or DefaultPlane: a fresh
	// state.State always starts in G21 and the XY plane.
	Interpreter struct {
		DefaultUnits string `toml:"default_units"` // "inches" or "mm"
		DefaultPlane string `toml:"default_plane"`  // "xy", "xz", or "yz"
		ParamFile    string `toml:"param_file"`
	} `toml:"interpreter"`

	// Stepper settings: the TUI block-stepper.
	Stepper struct {
		HistorySize   int  `toml:"history_size"`
		ShowState     bool `toml:"show_state"`
		ShowTrace     bool `toml:"show_trace"`
		AutoSaveBreaks bool `toml:"auto_save_breakpoints"`
	} `toml:"stepper"`

	// Monitor settings: the HTTP/websocket observability service.
	Monitor struct {
		ListenAddr  string `toml:"listen_addr"`
		BufferSize  int    `toml:"buffer_size"`
		EnableTrace bool   `toml:"enable_trace"`
	} `toml:"monitor"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Interpreter.DefaultUnits = "inches"
	cfg.Interpreter.DefaultPlane = "xy"
	cfg.Interpreter.ParamFile = "ngc.var"

	cfg.Stepper.HistorySize = 1000
	cfg.Stepper.ShowState = true
	cfg.Stepper.ShowTrace = true
	cfg.Stepper.AutoSaveBreaks = true

	cfg.Monitor.ListenAddr = "127.0.0.1:8585"
	cfg.Monitor.BufferSize = 1000
	cfg.Monitor.EnableTrace = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "enigma")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "enigma")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: it yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
