package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-adaptive/pkg/introspect"
	"github.com/goliatone/go-adaptive/pkg/openapi"
	"github.com/goliatone/go-adaptive/pkg/recommend"
)

var analyzeFlags struct {
	schema     string
	schemaName string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.json]",
	Short: "Analyze a JSON sample or an OpenAPI component schema",
	Long: `Reads a JSON record (or array of records) and prints the derived
analysis: field descriptors, structural patterns, complexity tier, and
recommendations. With --schema, analyzes a named component schema from an
OpenAPI document instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeFlags.schema != "" {
			return analyzeSchema(cmd, analyzeFlags.schema, analyzeFlags.schemaName)
		}
		if len(args) == 0 {
			return fmt.Errorf("provide a JSON sample file or --schema")
		}
		return analyzeSample(cmd, args[0])
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.schema, "schema", "", "OpenAPI document path")
	analyzeCmd.Flags().StringVar(&analyzeFlags.schemaName, "schema-name", "", "component schema to analyze")
}

func analyzeSample(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sample: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("parse sample: %w", err)
	}

	analyzer := introspect.New()

	if items, ok := value.([]any); ok {
		collection := analyzer.AnalyzeJSONCollection(items)
		return printJSON(cmd, collection)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("sample must be a JSON object or array of objects")
	}
	result := analyzer.AnalyzeMap(obj)
	return printJSON(cmd, struct {
		Analysis        any `json:"analysis"`
		Recommendations any `json:"recommendations"`
	}{result, recommend.Recommend(result)})
}

func analyzeSchema(cmd *cobra.Command, docPath, schemaName string) error {
	payload, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read schema document: %w", err)
	}

	analyzer, err := openapi.Load(cmd.Context(), payload)
	if err != nil {
		return err
	}

	if schemaName == "" {
		return printJSON(cmd, struct {
			Schemas []string `json:"schemas"`
		}{analyzer.SchemaNames()})
	}

	result, err := analyzer.Analyze(schemaName)
	if err != nil {
		return err
	}
	return printJSON(cmd, struct {
		Analysis        any `json:"analysis"`
		Recommendations any `json:"recommendations"`
	}{result, recommend.Recommend(result)})
}

func printJSON(cmd *cobra.Command, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}
