package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/SumYin/formula-booklet-website/internal/models"
)

// CatalogRow is the flat record written by the catalog exporters.
type CatalogRow struct {
	Filename string `json:"filename" parquet:"filename"`
	Name     string `json:"name" parquet:"name"`
	Year     string `json:"year" parquet:"year"`
	Effect   string `json:"effect" parquet:"effect"`
}

// Write saves a catalog snapshot to path, picking the format from the file
// extension (Parquet or JSONL).
func Write(path string, items []models.BookletItem) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return writeParquet(path, items)
	case ".jsonl", ".json":
		return writeJSONL(path, items)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func rows(items []models.BookletItem) []CatalogRow {
	out := make([]CatalogRow, len(items))
	for i, item := range items {
		out[i] = CatalogRow{
			Filename: item.Filename,
			Name:     item.Name,
			Year:     item.Year,
			Effect:   item.Effect,
		}
	}
	return out
}

func writeParquet(path string, items []models.BookletItem) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[CatalogRow](file)
	if len(items) > 0 {
		if _, err := writer.Write(rows(items)); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}
	// Close writes the parquet footer; skipping the error check would
	// produce a truncated file.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	slog.Debug("Wrote parquet snapshot", "path", path, "rows", len(items))
	return nil
}

func writeJSONL(path string, items []models.BookletItem) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, row := range rows(items) {
		line, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush snapshot file: %w", err)
	}

	slog.Debug("Wrote JSONL snapshot", "path", path, "rows", len(items))
	return nil
}
