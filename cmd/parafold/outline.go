package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/parafold/internal/document"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// outlineEntry describes one paragraph of the exported outline.
type outlineEntry struct {
	Index     int    `yaml:"index" json:"index"`
	StartLine int    `yaml:"start_line" json:"start_line"`
	LineCount int    `yaml:"line_count" json:"line_count"`
	FirstLine string `yaml:"first_line" json:"first_line"`
}

type outlineReport struct {
	Document   string         `yaml:"document" json:"document"`
	Lines      int            `yaml:"lines" json:"lines"`
	Paragraphs []outlineEntry `yaml:"paragraphs" json:"paragraphs"`
}

func newOutlineCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print the paragraph outline of a document",
		Long: `Segment a document into paragraphs and print the outline without
starting the navigator.

Each entry carries the paragraph index (starting at 1), the line the
paragraph starts on, how many lines it spans and its first line.`,
		Example: `  # YAML outline (default)
  parafold outline notes.txt

  # JSON outline of standard input
  cat notes.txt | parafold outline --format json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), buildOutline(doc), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format (yaml, json)")
	return cmd
}

func buildOutline(doc *document.Document) outlineReport {
	report := outlineReport{
		Document:   doc.Path,
		Lines:      len(doc.Lines),
		Paragraphs: make([]outlineEntry, 0, len(doc.Paragraphs)),
	}
	for i, p := range doc.Paragraphs {
		report.Paragraphs = append(report.Paragraphs, outlineEntry{
			Index:     i + 1,
			StartLine: p.StartLine,
			LineCount: len(p.Lines),
			FirstLine: p.Title(),
		})
	}
	return report
}

func writeOutline(w io.Writer, report outlineReport, format string) error {
	switch strings.ToLower(format) {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode outline: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode outline: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", format)
	}
}
