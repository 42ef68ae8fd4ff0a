package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marmos91/sdp/internal/debugserver"
	"github.com/marmos91/sdp/internal/dispatchaudit"
	"github.com/marmos91/sdp/internal/logger"
	"github.com/marmos91/sdp/internal/metrics"
	_ "github.com/marmos91/sdp/internal/metrics/prometheus"
	"github.com/marmos91/sdp/pkg/config"
	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/records"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the debug/inspection HTTP server",
	Long: `Starts the debug server exposing GET /fixtures/{record}/{id} for
manual inspection of decoded golden fixtures, GET /metrics for Prometheus
exposition, and an authenticated POST /fixtures/{record} upload-and-audit
endpoint. Blocks until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics.InitRegistry()

		// serve is long-running, so it watches the config file for edits
		// (via fsnotify, under viper.WatchConfig) and hot-applies logging
		// changes rather than requiring a restart to pick up a new level.
		_, _, err := config.LoadAndWatch(cfgFile, func(reloaded *config.Config, watchErr error) {
			if watchErr != nil {
				logger.Error("serve: config reload failed, keeping previous settings", "error", watchErr)
				return
			}
			logger.Info("serve: config reloaded", "log_level", reloaded.Logging.Level)
			logger.SetLevel(reloaded.Logging.Level)
		})
		if err != nil {
			return err
		}

		var auditStore *dispatchaudit.Store
		if cfg.DispatchAudit.Enabled {
			store, err := dispatchaudit.Open(dispatchaudit.Config{
				Enabled: cfg.DispatchAudit.Enabled,
				Driver:  dispatchaudit.Driver(cfg.DispatchAudit.Driver),
				DSN:     cfg.DispatchAudit.DSN,
			})
			if err != nil {
				return err
			}
			defer store.Close()
			auditStore = store
		}

		srv := debugserver.New(debugserver.Config{
			ListenAddress: cfg.DebugServer.ListenAddress,
			JWTSigningKey: cfg.DebugServer.JWTSigningKey,
			TestdataDir:   "testdata",
		}, fixtureRegistry())

		if auditStore != nil {
			srv.OnUpload(func(ctx context.Context, recordName string, bytesConsumed int, ok bool) {
				outcome := "ok"
				if !ok {
					outcome = "error"
				}
				if err := auditStore.Record(ctx, 0, bytesConsumed, outcome); err != nil {
					logger.Error("serve: audit upload failed", "record", recordName, "error", err)
				}
			})
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// fixtureRegistry maps each name in recordNames to a factory for a fresh,
// zero-value decoder of that record: the map the debug server indexes
// fixtures by.
func fixtureRegistry() map[string]debugserver.RecordFactory {
	return map[string]debugserver.RecordFactory{
		"primitives":         func() record.Decoder { return &records.Primitives{} },
		"arrays":             func() record.Decoder { return &records.Arrays{} },
		"optionals":          func() record.Decoder { return &records.Optionals{} },
		"nested":             func() record.Decoder { return &records.Line{} },
		"audiounit_registry": func() record.Decoder { return &records.AudioUnitRegistry{} },
	}
}
