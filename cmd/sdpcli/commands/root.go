// Package commands implements the sdpcli subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/sdp/internal/logger"
	"github.com/marmos91/sdp/pkg/config"
)

var (
	// Version and Commit are set by main from ldflags-injected build info.
	Version = "dev"
	Commit  = "none"

	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sdpcli",
	Short: "SDP cross-language test harness",
	Long: `sdpcli exercises the SDP wire format's records from the command line:
encoding canonical instances, decoding and validating fixtures, and
describing record schemas, per the cross-language test-driver protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return logger.Init(logger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/sdp/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sdpcli version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("sdpcli %s (commit: %s)\n", Version, Commit)
		return nil
	},
}
