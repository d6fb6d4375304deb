package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file schema. Flags override any
// value set here.
type FileConfig struct {
	// PrinterURI is the default printer (ipp:// or ipps://).
	PrinterURI string `yaml:"printer_uri"`

	// UserName is sent as requesting-user-name on job operations.
	UserName string `yaml:"user_name"`

	// Timeout is the per-request timeout (Go duration string).
	Timeout time.Duration `yaml:"timeout"`

	// TraceFile enables exchange tracing to the given path.
	TraceFile string `yaml:"trace_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Interface restricts discovery to one network interface.
	Interface string `yaml:"interface"`
}

// loadFileConfig reads and parses a YAML configuration file.
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
