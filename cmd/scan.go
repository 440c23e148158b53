package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/museoabiertos/artcat/internal/export"
	"github.com/museoabiertos/artcat/internal/extract"
	"github.com/museoabiertos/artcat/internal/scan"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var root string
	var outputDir string
	var rulesPath string
	var writeParquet bool
	var writeXLSX bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan [ROOT]",
		Short: "Scan a collection tree and write the consolidated outputs",
		Long: `Scan walks every visible subdirectory of ROOT, extracts the metadata
fields of each .docx sheet, pairs the sheet with its image files, and at
the end of the run writes a timestamped CSV plus a plain-text alert log
to the output directory.

Per-document problems (missing fields, sheets with no images, orphaned
images) never stop the run; they are collected into the alert log.`,
		Example: `  # Scan a collection tree
  artcat scan /archive/collections

  # Prompt for the root path interactively
  artcat scan

  # Custom rules, extra Parquet and XLSX outputs
  artcat scan /archive/collections --rules rules.yaml --parquet --xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			if len(args) == 1 {
				root = args[0]
			}
			if root == "" {
				var err error
				root, err = promptRoot(cmd)
				if err != nil {
					return err
				}
			}

			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("root path: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("root path is not a directory: %s", root)
			}

			rules := extract.DefaultRules()
			if rulesPath != "" {
				rules, err = extract.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				slog.Info("loaded rules file", "path", rulesPath, "rules", len(rules))
			}

			return executeScan(root, outputDir, rules, writeParquet, writeXLSX)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Root directory of the collection tree (or pass as argument)")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory the timestamped outputs are written to")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file overriding the built-in field-rule table")
	cmd.Flags().BoolVar(&writeParquet, "parquet", false, "Also write the records as a Parquet dataset")
	cmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write the records as an XLSX workbook")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeScan(root, outputDir string, rules []extract.Rule, writeParquet, writeXLSX bool) error {
	scanner := scan.New(rules, slog.Default())

	result, err := scanner.Run(root)
	if err != nil {
		return err
	}

	stamp := time.Now().Format("2006-01-02_15-04-05")

	alertsPath := filepath.Join(outputDir, "alerts_"+stamp+".txt")
	if err := export.WriteAlerts(alertsPath, result.Alerts); err != nil {
		return err
	}

	csvPath := filepath.Join(outputDir, "output_"+stamp+".csv")
	if err := export.WriteCSV(csvPath, result.Records); err != nil {
		return err
	}
	slog.Info("wrote outputs", "csv", csvPath, "alerts", alertsPath)

	if writeParquet {
		path := filepath.Join(outputDir, "output_"+stamp+".parquet")
		if err := export.WriteParquet(path, result.Records); err != nil {
			return err
		}
		slog.Info("wrote parquet", "path", path)
	}

	if writeXLSX {
		path := filepath.Join(outputDir, "output_"+stamp+".xlsx")
		if err := export.WriteXLSX(path, result.Records); err != nil {
			return err
		}
		slog.Info("wrote xlsx", "path", path)
	}

	return nil
}

// promptRoot asks for the root path on stdin when it was given neither as
// a flag nor as an argument.
func promptRoot(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Please enter the root directory: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read root path: %w", err)
	}

	root := strings.TrimSpace(line)
	if root == "" {
		return "", fmt.Errorf("no root path given")
	}
	return root, nil
}
