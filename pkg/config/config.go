// Package config loads the process configuration for sdpcli and the
// satellite services: a viper-backed YAML file, overridden by SDP_*
// environment variables, validated with validator/v10 before use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the sdp tooling: the ambient
// logging stack plus its satellite services (fixture store, fixture
// archive, dispatch audit, debug server, telemetry). The wire format
// itself (pkg/wire, pkg/stream, pkg/record, pkg/message) takes no
// configuration — MaxArraySize here tunes only this process's DoS-guard
// threshold, never a byte on the wire.
//
// Precedence, highest to lowest: SDP_* environment variables (for keys the
// YAML file sets), the YAML file, the defaults from applyDefaults. No key
// is bound to a command-line flag; cmd/sdpcli's --config flag only selects
// the file.
type Config struct {
	Logging       LoggingConfig       `mapstructure:"logging" yaml:"logging"`
	MaxArraySize  uint32              `mapstructure:"max_array_size" validate:"omitempty,gt=0" yaml:"max_array_size"`
	FixtureStore  FixtureStoreConfig  `mapstructure:"fixture_store" yaml:"fixture_store"`
	FixtureArchive FixtureArchiveConfig `mapstructure:"fixture_archive" yaml:"fixture_archive"`
	DispatchAudit DispatchAuditConfig `mapstructure:"dispatch_audit" yaml:"dispatch_audit"`
	DebugServer   DebugServerConfig   `mapstructure:"debug_server" yaml:"debug_server"`
	Telemetry     TelemetryConfig     `mapstructure:"telemetry" yaml:"telemetry"`
}

// LoggingConfig controls internal/logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// FixtureStoreConfig points internal/fixturestore at its badger directory.
type FixtureStoreConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Dir     string `mapstructure:"dir" validate:"required_if=Enabled true" yaml:"dir"`
}

// FixtureArchiveConfig points internal/fixturearchive at its S3 bucket.
type FixtureArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Bucket  string `mapstructure:"bucket" validate:"required_if=Enabled true" yaml:"bucket"`
	Region  string `mapstructure:"region" yaml:"region"`
	Prefix  string `mapstructure:"prefix" yaml:"prefix"`
}

// DispatchAuditConfig selects and connects internal/dispatchaudit's store.
type DispatchAuditConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Driver  string `mapstructure:"driver" validate:"omitempty,oneof=postgres sqlite" yaml:"driver"`
	DSN     string `mapstructure:"dsn" validate:"required_if=Enabled true" yaml:"dsn"`
}

// DebugServerConfig configures internal/debugserver.
type DebugServerConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	ListenAddress string `mapstructure:"listen_address" yaml:"listen_address"`
	JWTSigningKey string `mapstructure:"jwt_signing_key" validate:"required_if=Enabled true" yaml:"jwt_signing_key"`
}

// TelemetryConfig holds the telemetry settings. sdpcli profile passes
// Endpoint to internal/telemetry as the Pyroscope server address.
type TelemetryConfig struct {
	Enabled     bool          `mapstructure:"enabled" yaml:"enabled"`
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	ServiceName string        `mapstructure:"service_name" yaml:"service_name"`
	Insecure    bool          `mapstructure:"insecure" yaml:"insecure"`
	FlushEvery  time.Duration `mapstructure:"flush_every" yaml:"flush_every"`
}

// Load reads configPath (or the default location if empty), applies
// defaults, and validates the result. SDP_* environment variables override
// only keys the config file sets; when no file is found the environment is
// not consulted and the defaults are used.
func Load(configPath string) (*Config, error) {
	cfg, _, err := load(configPath)
	return cfg, err
}

// Watcher holds the viper instance behind a loaded Config so long-running
// processes (cmd/sdpcli serve) can react to edits of the config file on
// disk without restarting.
type Watcher struct {
	v *viper.Viper
}

// LoadAndWatch is Load plus a live-reload hook: every time the underlying
// file changes it is decoded again, defaults are applied and the result is
// validated. onChange then receives the new Config and a nil error, or a
// nil Config and the decode or validation error; in the error case the
// caller keeps whatever Config it already holds.
func LoadAndWatch(configPath string, onChange func(*Config, error)) (*Config, *Watcher, error) {
	cfg, v, err := load(configPath)
	if err != nil {
		return nil, nil, err
	}

	w := &Watcher{v: v}
	if onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			reloaded := defaultConfig()
			if err := v.Unmarshal(reloaded, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
				durationDecodeHook(),
			))); err != nil {
				onChange(nil, fmt.Errorf("reload config after %s: %w", e.Op, err))
				return
			}
			applyDefaults(reloaded)
			if err := Validate(reloaded); err != nil {
				onChange(nil, fmt.Errorf("validate reloaded config: %w", err))
				return
			}
			onChange(reloaded, nil)
		})
		v.WatchConfig()
	}
	return cfg, w, nil
}

func load(configPath string) (*Config, *viper.Viper, error) {
	v := viper.New()
	setupViper(v, configPath)

	found, err := readConfigFile(v)
	if err != nil {
		return nil, nil, err
	}

	cfg := defaultConfig()
	if found {
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			durationDecodeHook(),
		))); err != nil {
			return nil, nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, v, nil
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("SDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(DefaultConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read config file: %w", err)
	}
	return true, nil
}

func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/sdp, or ~/.config/sdp, or "."
// if the home directory can't be determined.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sdp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sdp")
}

// DefaultConfigPath returns DefaultConfigDir()/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}
