package commands

import (
	"fmt"
	"os"
	"reflect"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <record> <file>",
	Short: "Decode <file> with <record>'s decoder and validate against the canonical value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		want, err := canonical(name)
		if err != nil {
			return err
		}
		got, err := canonical(name)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := got.DecodeFromSlice(data); err != nil {
			return fmt.Errorf("decode %s as %s: %w", path, name, err)
		}

		if reflect.DeepEqual(want, got) {
			cmd.Printf("%s: matches canonical value\n", name)
			return nil
		}

		printDiff(cmd, want, got)
		return fmt.Errorf("%s: decoded value does not match canonical value", name)
	},
}

// printDiff renders a field-by-field table of want vs. got, for record
// types that are structs behind a pointer (every type in pkg/records).
func printDiff(cmd *cobra.Command, want, got any) {
	wv := reflect.ValueOf(want).Elem()
	gv := reflect.ValueOf(got).Elem()
	t := wv.Type()

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"field", "canonical", "decoded"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for i := 0; i < t.NumField(); i++ {
		wf := wv.Field(i)
		gf := gv.Field(i)
		if reflect.DeepEqual(wf.Interface(), gf.Interface()) {
			continue
		}
		table.Append([]string{t.Field(i).Name, fmt.Sprintf("%v", wf.Interface()), fmt.Sprintf("%v", gf.Interface())})
	}
	table.Render()
}
