package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artcat",
		Short: "Artwork sheet scraper for collection directory trees",
		Long: `artcat extracts artwork metadata from the .docx sheets of a collection
directory tree, pairs each sheet with the image files that share its name,
and writes one consolidated tabular row per image.

The tree is expected to be one level deep: a root directory of artist or
collection folders, each holding .docx sheets and their .jpg/.jpeg images.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}
