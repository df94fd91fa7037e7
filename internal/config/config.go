// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"gerber-estimate/internal/errors"
	"gerber-estimate/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// MaxUploadMB caps the multipart body accepted by POST /analyze
	MaxUploadMB int `json:"max_upload_mb"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// Detail includes the per-file report
	Detail bool `json:"detail"`
}

// MaxUploadBytes returns the upload cap in bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:        ":8080",
			MaxUploadMB: 10,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			Detail:        false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a JSON or HCL file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot stat config file", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return loadHCL(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("cannot read config file", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("invalid JSON config", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Server.MaxUploadMB <= 0 {
		return errors.Config("server.max_upload_mb must be positive", nil)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json", "yaml":
	default:
		return errors.Config("output.default_format must be one of cli, json, yaml", nil).
			WithContext("value", c.Output.DefaultFormat)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// hclFile mirrors Config for HCL decoding. Blocks are optional and only
// non-zero attributes override the defaults.
type hclFile struct {
	Version string      `hcl:"version,optional"`
	Server  *hclServer  `hcl:"server,block"`
	Output  *hclOutput  `hcl:"output,block"`
	Logging *hclLogging `hcl:"logging,block"`
}

type hclServer struct {
	Addr        string `hcl:"addr,optional"`
	MaxUploadMB int    `hcl:"max_upload_mb,optional"`
}

type hclOutput struct {
	DefaultFormat string `hcl:"default_format,optional"`
	Detail        bool   `hcl:"detail,optional"`
}

type hclLogging struct {
	Level       string `hcl:"level,optional"`
	Format      string `hcl:"format,optional"`
	Output      string `hcl:"output,optional"`
	Development bool   `hcl:"development,optional"`
}

func loadHCL(path string) (*Config, error) {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("invalid HCL config", err)
	}

	config := Default()
	if file.Version != "" {
		config.Version = file.Version
	}
	if s := file.Server; s != nil {
		if s.Addr != "" {
			config.Server.Addr = s.Addr
		}
		if s.MaxUploadMB != 0 {
			config.Server.MaxUploadMB = s.MaxUploadMB
		}
	}
	if o := file.Output; o != nil {
		if o.DefaultFormat != "" {
			config.Output.DefaultFormat = o.DefaultFormat
		}
		config.Output.Detail = config.Output.Detail || o.Detail
	}
	if l := file.Logging; l != nil {
		if l.Level != "" {
			config.Logging.Level = l.Level
		}
		if l.Format != "" {
			config.Logging.Format = l.Format
		}
		if l.Output != "" {
			config.Logging.Output = l.Output
		}
		config.Logging.Development = config.Logging.Development || l.Development
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
