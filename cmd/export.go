package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SumYin/formula-booklet-website/internal/catalog"
	"github.com/SumYin/formula-booklet-website/internal/effects"
	"github.com/SumYin/formula-booklet-website/internal/export"
)

func newExportCmd() *cobra.Command {
	var dir string
	var output string
	var effectsPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the booklet catalog to a snapshot file",
		Long: `Scans the booklet directory and writes the resulting catalog to a file.

The output format is chosen by the file extension: .parquet for a Parquet
snapshot, .jsonl or .json for one JSON object per line. Each row carries the
same filename, name, year and effect fields the website renders.`,
		Example: `  # Snapshot ./booklets to Parquet
  booklet-site export

  # Snapshot a different directory to JSONL
  booklet-site export --dir /srv/booklets --output catalog.jsonl

  # Apply custom effect rules to the snapshot
  booklet-site export --effects effects.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapper := effects.Default()
			if effectsPath != "" {
				rules, err := effects.LoadRules(effectsPath)
				if err != nil {
					return fmt.Errorf("failed to load effect rules: %w", err)
				}
				mapper = effects.New(rules)
			}

			items := catalog.New(dir, mapper).Build()
			if err := export.Write(output, items); err != nil {
				return err
			}

			fmt.Printf("Exported %d booklets to %s\n", len(items), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "booklets", "Directory containing the booklet PDFs")
	cmd.Flags().StringVarP(&output, "output", "o", "catalog.parquet", "Output file (.parquet, .jsonl or .json)")
	cmd.Flags().StringVar(&effectsPath, "effects", "", "YAML file mapping name keywords to effects (replaces the built-in rules)")

	return cmd
}
