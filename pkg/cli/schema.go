package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/schema"
)

var schemaCount int

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Generate fake JSON from a JSON Schema",
	Long: `Generate fake JSON documents that match a JSON Schema. String fields
are filled by format and by property name, so "email" fields get
emails and "firstName" fields get first names in the selected locale.
Output is always JSON.

Examples:
  # One document
  fairy schema user.schema.json

  # Twenty German records, reproducibly
  fairy schema user.schema.json -n 20 -l de --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().IntVarP(&schemaCount, "count", "n", 1, "Number of documents to generate")
}

func runSchema(cmd *cobra.Command, args []string) error {
	if schemaCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", schemaCount)
	}

	compiled, err := schema.CompileFile(args[0])
	if err != nil {
		return err
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	gen := schema.New(f)

	docs := make([]interface{}, 0, schemaCount)
	for i := 0; i < schemaCount; i++ {
		doc, err := gen.Generate(compiled)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	return output.Collection(docs)
}
