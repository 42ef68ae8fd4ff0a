package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/marmos91/sdp/pkg/records"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema <record>",
	Short: "Describe a record's fields as a JSON schema",
	Long: `Introspects a record's Go struct via reflection and emits a JSON
schema description of its fields. Documentation aid only: schema is never
consulted by encode or decode.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Output file (default: stdout)")
}

func schemaTarget(name string) (any, error) {
	switch name {
	case "primitives":
		return &records.Primitives{}, nil
	case "arrays":
		return &records.Arrays{}, nil
	case "optionals":
		return &records.Optionals{}, nil
	case "nested":
		return &records.Line{}, nil
	case "audiounit_registry":
		return &records.AudioUnitRegistry{}, nil
	default:
		return nil, fmt.Errorf("unknown record %q", name)
	}
}

func runSchema(cmd *cobra.Command, args []string) error {
	target, err := schemaTarget(args[0])
	if err != nil {
		return err
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(target)
	schema.Version = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = args[0]

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	if schemaOutput != "" {
		if err := os.WriteFile(schemaOutput, data, 0o644); err != nil {
			return fmt.Errorf("write schema file: %w", err)
		}
		cmd.Printf("schema written to %s\n", schemaOutput)
		return nil
	}
	cmd.Println(string(data))
	return nil
}
