package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/paularlott/cli"
)

type Config struct {
	DataDir         string
	ListenAddr      string
	MCPAuthToken    string
	APIAuthToken    string
	LogLevel        string
	LogFormat       string
	PlatformCatalog string
	OTelEndpoint    string
	Probe           ProbeConfig
}

// ProbeConfig controls the periodic reachability probe.
type ProbeConfig struct {
	Enabled     bool          `env:"NETINV_PROBE_ENABLED" envDefault:"false"`
	Interval    time.Duration `env:"NETINV_PROBE_INTERVAL" envDefault:"5m"`
	Timeout     time.Duration `env:"NETINV_PROBE_TIMEOUT" envDefault:"2s"`
	Concurrency int           `env:"NETINV_PROBE_CONCURRENCY" envDefault:"5"`
	ARP         bool          `env:"NETINV_PROBE_ARP" envDefault:"false"`
}

type envConfig struct {
	OTelEndpoint string `env:"NETINV_OTEL_ENDPOINT"`
	Probe        ProbeConfig
}

var (
	dataDir         string
	listenAddr      string
	mcpAuthToken    string
	apiAuthToken    string
	logLevel        string
	logFormat       string
	platformCatalog string
)

func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:         "data-dir",
			Usage:        "Data directory path",
			EnvVars:      []string{"NETINV_DATA_DIR"},
			DefaultValue: filepath.Join(".", "data"),
			AssignTo:     &dataDir,
		},
		&cli.StringFlag{
			Name:         "addr",
			Usage:        "Server listen address",
			EnvVars:      []string{"NETINV_LISTEN_ADDR"},
			DefaultValue: ":8080",
			AssignTo:     &listenAddr,
		},
		&cli.StringFlag{
			Name:     "mcp-token",
			Usage:    "MCP bearer token",
			EnvVars:  []string{"NETINV_MCP_TOKEN"},
			AssignTo: &mcpAuthToken,
		},
		&cli.StringFlag{
			Name:     "api-token",
			Usage:    "API bearer token",
			EnvVars:  []string{"NETINV_API_TOKEN"},
			AssignTo: &apiAuthToken,
		},
		&cli.StringFlag{
			Name:         "log-level",
			Usage:        "Log level (debug, info, warn, error)",
			EnvVars:      []string{"NETINV_LOG_LEVEL"},
			DefaultValue: "info",
			AssignTo:     &logLevel,
		},
		&cli.StringFlag{
			Name:         "log-format",
			Usage:        "Log format (console, json)",
			EnvVars:      []string{"NETINV_LOG_FORMAT"},
			DefaultValue: "console",
			AssignTo:     &logFormat,
		},
		&cli.StringFlag{
			Name:     "platform-catalog",
			Usage:    "Platform catalog YAML file",
			EnvVars:  []string{"NETINV_PLATFORM_CATALOG"},
			AssignTo: &platformCatalog,
		},
	}
}

// Load combines the parsed flags with the environment-only settings.
func Load() (*Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg := &Config{
		DataDir:         dataDir,
		ListenAddr:      listenAddr,
		MCPAuthToken:    mcpAuthToken,
		APIAuthToken:    apiAuthToken,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		PlatformCatalog: platformCatalog,
		OTelEndpoint:    ec.OTelEndpoint,
		Probe:           ec.Probe,
	}
	if err := cfg.Probe.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadProbe parses the probe settings from the environment.
func LoadProbe() (ProbeConfig, error) {
	var pc ProbeConfig
	if err := env.Parse(&pc); err != nil {
		return pc, fmt.Errorf("parse env: %w", err)
	}
	return pc, pc.Validate()
}

func (p ProbeConfig) Validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("probe interval must be positive, got %s", p.Interval)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", p.Timeout)
	}
	if p.Concurrency < 1 {
		return fmt.Errorf("probe concurrency must be at least 1, got %d", p.Concurrency)
	}
	return nil
}

// IsMCPEnabled checks if MCP authentication is configured
func (c *Config) IsMCPEnabled() bool {
	return c.MCPAuthToken != ""
}

// IsAPIAuthEnabled checks if API authentication is configured
func (c *Config) IsAPIAuthEnabled() bool {
	return c.APIAuthToken != ""
}

// IsTracingEnabled reports whether an OTLP endpoint is configured.
func (c *Config) IsTracingEnabled() bool {
	return c.OTelEndpoint != ""
}
