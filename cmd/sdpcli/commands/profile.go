package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/sdp/internal/dispatchaudit"
	"github.com/marmos91/sdp/internal/logger"
	"github.com/marmos91/sdp/internal/telemetry"
)

var (
	profileIterations int
	replayAuditDSN     string
	replayAuditCount   int
)

var profileCmd = &cobra.Command{
	Use:   "profile <record>",
	Short: "Run an encode/decode micro-benchmark loop under continuous profiling",
	Long: `Repeatedly encodes and decodes <record>'s canonical instance under
Pyroscope continuous profiling, for engineers chasing the fast-path
thresholds in the array codec.

With --replay-audit-dsn set, <record> is ignored in favor of the message
mix reconstructed from the last N rows of internal/dispatchaudit's audit
table, so the benchmark exercises the same tag distribution production
traffic actually produced rather than a single record repeated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := profileMix(cmd, args)
		if err != nil {
			return err
		}

		shutdown, err := telemetry.StartProfiling(telemetry.ProfilingConfig{
			Enabled:     true,
			ServiceName: "sdpcli-profile",
			Endpoint:    cfg.Telemetry.Endpoint,
		})
		if err != nil {
			return err
		}
		defer shutdown()

		start := time.Now()
		for i := 0; i < profileIterations; i++ {
			name := names[i%len(names)]
			rec, err := canonical(name)
			if err != nil {
				return err
			}
			buf := make([]byte, rec.EncodedSize())
			if _, err := rec.EncodeToSlice(buf); err != nil {
				return err
			}
			decoded, err := canonical(name)
			if err != nil {
				return err
			}
			if _, err := decoded.DecodeFromSlice(buf); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		cmd.Printf("%d iterations over %d record(s) in %s (%s/iteration)\n",
			profileIterations, len(names), elapsed, elapsed/time.Duration(profileIterations))
		return nil
	},
}

// profileMix returns the repeating sequence of record names a profile run
// should cycle through: either the single record named on the command line,
// or the tag mix replayed from the audit log when --replay-audit-dsn is set.
func profileMix(cmd *cobra.Command, args []string) ([]string, error) {
	if replayAuditDSN == "" {
		if len(args) != 1 {
			return nil, cmd.Help()
		}
		return []string{args[0]}, nil
	}

	ctx := cmd.Context()
	source, err := dispatchaudit.OpenReplaySource(ctx, replayAuditDSN)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	events, err := source.LastN(ctx, replayAuditCount)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, ev := range events {
		name, ok := recordForTag(ev.TypeTag)
		if !ok {
			logger.Warn("profile: skipping unrecognized type tag in audit replay", "tag", ev.TypeTag)
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, dispatchaudit.ErrEmptyReplayMix
	}
	return names, nil
}

func init() {
	profileCmd.Flags().IntVar(&profileIterations, "iterations", 100_000, "number of encode/decode round-trips to run")
	profileCmd.Flags().StringVar(&replayAuditDSN, "replay-audit-dsn", "", "postgres DSN to replay the last N dispatch events from, instead of profiling a single record")
	profileCmd.Flags().IntVar(&replayAuditCount, "replay-audit-count", 1000, "number of audit events to pull when --replay-audit-dsn is set")
}
