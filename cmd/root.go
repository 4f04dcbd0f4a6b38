package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklet-site",
		Short: "Formula booklet listing and download site",
		Long: `Booklet-site serves a directory of PDF formula booklets as a small website.

Booklet names and years are derived from the filenames, so dropping a PDF into
the booklet directory is all it takes to publish it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
