package cmd

import (
	"fmt"
	"strings"

	"github.com/museoabiertos/artcat/internal/dates"
	"github.com/museoabiertos/artcat/internal/docx"
	"github.com/museoabiertos/artcat/internal/extract"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var rulesPath string
	var showText bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Inspect the fields extracted from a single .docx sheet",
		Long: `Inspect extracts one .docx sheet and prints each field rule with its
captured value, marking the rules that matched nothing. The date field is
shown both raw and normalized.

Useful for checking rule coverage against a new batch of documents before
running a full scan.`,
		Example: `  # Show the extracted fields of one sheet
  artcat inspect /archive/collections/garcia/obra-12.docx

  # Include the full extracted text
  artcat inspect obra-12.docx --text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := extract.DefaultRules()
			if rulesPath != "" {
				var err error
				rules, err = extract.LoadRules(rulesPath)
				if err != nil {
					return err
				}
			}
			return executeInspect(cmd, args[0], rules, showText)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file overriding the built-in field-rule table")
	cmd.Flags().BoolVar(&showText, "text", false, "Also print the full extracted document text")

	return cmd
}

func executeInspect(cmd *cobra.Command, path string, rules []extract.Rule, showText bool) error {
	text, err := docx.ExtractText(path)
	if err != nil {
		return err
	}

	fields, missing := extract.Extract(text, rules)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", path)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	for _, rule := range rules {
		value, ok := fields[rule.Key]
		if !ok {
			fmt.Fprintf(out, "%-20s (not found)\n", rule.Key+":")
			continue
		}
		fmt.Fprintf(out, "%-20s %s\n", rule.Key+":", value)
		if rule.Key == extract.KeyDate {
			fmt.Fprintf(out, "%-20s %s\n", "  normalized:", dates.Normalize(value))
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(out, "\n%d of %d rules matched nothing\n", len(missing), len(rules))
	}

	if showText {
		fmt.Fprintln(out, strings.Repeat("-", 60))
		fmt.Fprintln(out, text)
	}

	return nil
}
