package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <record>",
	Short: "Write the canonical instance of <record> to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := canonical(args[0])
		if err != nil {
			return err
		}
		buf := make([]byte, rec.EncodedSize())
		if _, err := rec.EncodeToSlice(buf); err != nil {
			return err
		}
		_, err = os.Stdout.Write(buf)
		return err
	},
}
