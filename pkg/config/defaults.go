package config

import (
	"strings"
	"time"
)

// defaultConfig returns the field-wise default Config used when no file is
// found at the configured path.
func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills zero-valued fields with their defaults after a
// partial file/env load. Explicit values are left untouched.
func applyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)

	if cfg.MaxArraySize == 0 {
		cfg.MaxArraySize = 10_000_000
	}

	if cfg.FixtureStore.Dir == "" {
		cfg.FixtureStore.Dir = DefaultConfigDir() + "/fixtures.badger"
	}

	if cfg.FixtureArchive.Region == "" {
		cfg.FixtureArchive.Region = "us-east-1"
	}
	if cfg.FixtureArchive.Prefix == "" {
		cfg.FixtureArchive.Prefix = "sdp/testdata"
	}

	if cfg.DispatchAudit.Driver == "" {
		cfg.DispatchAudit.Driver = "sqlite"
	}
	if cfg.DispatchAudit.DSN == "" && cfg.DispatchAudit.Driver == "sqlite" {
		cfg.DispatchAudit.DSN = DefaultConfigDir() + "/dispatch_audit.db"
	}

	if cfg.DebugServer.ListenAddress == "" {
		cfg.DebugServer.ListenAddress = "127.0.0.1:8787"
	}

	if cfg.Telemetry.Endpoint == "" {
		cfg.Telemetry.Endpoint = "localhost:4317"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "sdp"
	}
	if cfg.Telemetry.FlushEvery == 0 {
		cfg.Telemetry.FlushEvery = 5 * time.Second
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}
