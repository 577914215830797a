package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !cfg.Style.PreferShorthands {
		t.Error("Shorthands must be preferred by default")
	}
	if cfg.Style.Order != OutputOrderSource {
		t.Errorf("Default order = %v, want source", cfg.Style.Order)
	}
	if cfg.Style.Separator != " " {
		t.Errorf("Default separator = %q", cfg.Style.Separator)
	}
	if cfg.Input.Encoding != "" {
		t.Errorf("Default encoding = %q, want empty", cfg.Input.Encoding)
	}
	if cfg.Input.MaxSize < 1024 {
		t.Errorf("Default max size = %d", cfg.Input.MaxSize)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "cssprop.log") {
		t.Errorf("Default log destination = %q", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, `version: 1
style:
  prefer_shorthands: false
  order: natural
  separator: "\n"
input:
  encoding: windows-1251
  max_size: 4096
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(tmpDir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Style.PreferShorthands {
		t.Error("Expected PreferShorthands to be false")
	}
	if cfg.Style.Order != OutputOrderNatural {
		t.Errorf("Order = %v, want natural", cfg.Style.Order)
	}
	if cfg.Style.Separator != "\n" {
		t.Errorf("Separator = %q, want new line", cfg.Style.Separator)
	}
	if cfg.Input.Encoding != "windows-1251" {
		t.Errorf("Encoding = %q", cfg.Input.Encoding)
	}
	if cfg.Input.MaxSize != 4096 {
		t.Errorf("MaxSize = %d", cfg.Input.MaxSize)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	configPath := writeConfig(t, `version: 1
style:
  order: natural
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Style.Order != OutputOrderNatural {
		t.Errorf("Order = %v, want natural from config file", cfg.Style.Order)
	}
	if !cfg.Style.PreferShorthands {
		t.Error("PreferShorthands should keep default value")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want default", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nstyle:\n  order: source\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"invalid version", "version: 2\n"},
		{"invalid order", "version: 1\nstyle:\n  order: random\n"},
		{"unknown encoding", "version: 1\ninput:\n  encoding: no-such-charset\n"},
		{"small input limit", "version: 1\ninput:\n  max_size: 10\n"},
		{"invalid log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Style.Order = OutputOrderNatural

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "order: natural") {
		t.Errorf("Dump() must use order names:\n%s", data)
	}

	// Verify we can load it back
	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Style != cfg.Style {
		t.Errorf("Style mismatch after dump/load: got %+v, want %+v", cfg2.Style, cfg.Style)
	}
}

func TestOutputOrder(t *testing.T) {
	tests := []struct {
		order    OutputOrder
		expected string
	}{
		{OutputOrderSource, "source"},
		{OutputOrderNatural, "natural"},
		{OutputOrder(99), "OutputOrder(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.order.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}

	var o OutputOrder
	if err := o.UnmarshalText([]byte("Natural")); err != nil || o != OutputOrderNatural {
		t.Errorf("UnmarshalText() = %v, %v", o, err)
	}
	if err := o.UnmarshalText([]byte("alphabetic")); !errors.Is(err, ErrInvalidOutputOrder) {
		t.Errorf("Expected ErrInvalidOutputOrder for unknown order, got %v", err)
	}
	if OutputOrder(99).IsValid() || !OutputOrderNatural.IsValid() {
		t.Error("IsValid() must accept declared values only")
	}
	if text, err := OutputOrderNatural.MarshalText(); err != nil || string(text) != "natural" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if names := OutputOrderNames(); len(names) != 2 {
		t.Errorf("OutputOrderNames() = %v", names)
	}
}
