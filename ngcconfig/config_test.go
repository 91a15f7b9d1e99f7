package ngcconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interpreter.DefaultUnits != "inches" {
		t.Errorf("expected DefaultUnits=inches, got %s", cfg.Interpreter.DefaultUnits)
	}
	if cfg.Interpreter.DefaultPlane != "xy" {
		t.Errorf("expected DefaultPlane=xy, got %s", cfg.Interpreter.DefaultPlane)
	}
	if cfg.Stepper.HistorySize != 1000 {
		t.Errorf("expected HistorySize=1000, got %d", cfg.Stepper.HistorySize)
	}
	if cfg.Monitor.ListenAddr != "127.0.0.1:8585" {
		t.Errorf("expected default listen addr, got %s", cfg.Monitor.ListenAddr)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with config.toml, got %s", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Interpreter.DefaultUnits = "mm"
	cfg.Interpreter.ParamFile = "custom.var"
	cfg.Monitor.EnableTrace = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Interpreter.DefaultUnits != "mm" {
		t.Errorf("expected DefaultUnits=mm, got %s", loaded.Interpreter.DefaultUnits)
	}
	if loaded.Interpreter.ParamFile != "custom.var" {
		t.Errorf("expected ParamFile=custom.var, got %s", loaded.Interpreter.ParamFile)
	}
	if loaded.Monitor.EnableTrace {
		t.Error("expected EnableTrace=false")
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}
	if cfg.Interpreter.DefaultUnits != "inches" {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[interpreter]
default_units = 42
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}
