// Command logosctl is a CLI front end over the logos analysis pipeline:
// load a compiled dictionary archive, optionally a semantic graph, and
// print the report for one sentence of text.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/glossa-analytics/logos"
	"github.com/glossa-analytics/logos/archive"
)

var (
	dictPath     string
	semanticPath string
	asJSON       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "logosctl",
	Short: "Analyse Ancient Greek text against a compiled dictionary archive",
}

var analyseCmd = &cobra.Command{
	Use:   "analyse [text]",
	Short: "Run the pipeline over a single sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := archive.Load(dictPath)
		if err != nil {
			return fmt.Errorf("loading archive: %w", err)
		}
		defer a.Close()

		p := logos.NewPipeline(a.Dict)
		if semanticPath != "" {
			sa, err := archive.Load(semanticPath)
			if err != nil {
				return fmt.Errorf("loading semantic archive: %w", err)
			}
			defer sa.Close()
			p.LoadSemantics(sa.Semantics)
		} else if a.Semantics != nil {
			p.LoadSemantics(a.Semantics)
		}

		report := p.Analyse(args[0])
		return printReport(report)
	},
}

func printReport(report logos.Report) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, t := range report.Tokens {
		fmt.Printf("%-20s %-20s %-24s %s\n", t.Text, t.Kind, t.Morphology, t.Debug)
	}
	for _, e := range report.SyntaxErrors {
		fmt.Printf("syntax error: %s / %s: %s\n", e.Source, e.Target, e.Message)
	}
	for _, m := range report.SemanticErrors {
		fmt.Printf("semantic error: %s\n", m)
	}
	fmt.Println(report.DebugInfo)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "path to the compiled dictionary archive")
	rootCmd.PersistentFlags().StringVar(&semanticPath, "semantics", "", "path to a compiled semantic-graph archive")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	rootCmd.MarkPersistentFlagRequired("dict")
	rootCmd.AddCommand(analyseCmd)
}
