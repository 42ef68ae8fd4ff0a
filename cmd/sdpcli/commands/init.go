package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marmos91/sdp/internal/cli/prompt"
	"github.com/marmos91/sdp/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively write a starter config file",
	Long: `Asks for the log level and format and whether to enable the
fixture store and the dispatch audit log, then writes a starter pkg/config
YAML file with the choices made. The fixture archive and debug server are
not asked about; their settings are written empty.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			overwrite, perr := prompt.Confirm(fmt.Sprintf("%s already exists, overwrite?", path), false)
			if perr != nil {
				if errors.Is(perr, prompt.ErrAborted) {
					return nil
				}
				return perr
			}
			if !overwrite {
				return nil
			}
		}
	}

	level, err := prompt.Select("Log level", []string{"DEBUG", "INFO", "WARN", "ERROR"})
	if err != nil {
		return err
	}
	format, err := prompt.Select("Log format", []string{"text", "json"})
	if err != nil {
		return err
	}

	fixtureStore, err := prompt.Confirm("Enable the badger fixture cache?", false)
	if err != nil {
		return err
	}
	var fixtureDir string
	if fixtureStore {
		fixtureDir, err = prompt.Input("Fixture cache directory", config.DefaultConfigDir()+"/fixtures.badger")
		if err != nil {
			return err
		}
	}

	auditEnabled, err := prompt.Confirm("Enable the dispatch audit log?", false)
	if err != nil {
		return err
	}
	var auditDriver, auditDSN string
	if auditEnabled {
		auditDriver, err = prompt.Select("Audit store driver", []string{"sqlite", "postgres"})
		if err != nil {
			return err
		}
		auditDSN, err = prompt.Input("Audit store DSN", config.DefaultConfigDir()+"/dispatch_audit.db")
		if err != nil {
			return err
		}
	}

	cfg := &config.Config{
		Logging: config.LoggingConfig{Level: level, Format: format, Output: "stdout"},
		FixtureStore: config.FixtureStoreConfig{
			Enabled: fixtureStore,
			Dir:     fixtureDir,
		},
		DispatchAudit: config.DispatchAuditConfig{
			Enabled: auditEnabled,
			Driver:  auditDriver,
			DSN:     auditDSN,
		},
	}

	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cmd.Printf("configuration written to %s\n", path)
	return nil
}
