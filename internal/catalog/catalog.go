package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/SumYin/formula-booklet-website/internal/effects"
	"github.com/SumYin/formula-booklet-website/internal/models"
)

// Booklet filenames follow <name>_<year>.pdf with a four digit year. The name
// group is greedy, so when a filename carries several _NNNN groups the last
// one is taken as the year.
var filenameRE = regexp.MustCompile(`(?i)^(.+)_(\d{4})\.pdf$`)

// ParseFilename splits a booklet filename into its display name and year.
// Filenames outside the <name>_<year>.pdf convention keep their full base
// name and get an empty year.
func ParseFilename(filename string) (name, year string) {
	if m := filenameRE.FindStringSubmatch(filename); m != nil {
		return m[1], m[2]
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)), ""
}

// Builder produces the booklet catalog for a directory.
type Builder struct {
	dir     string
	effects *effects.Mapper
}

// New creates a catalog builder rooted at dir. The mapper decides which
// presentation effect, if any, each booklet gets; a nil mapper applies none.
func New(dir string, m *effects.Mapper) *Builder {
	return &Builder{dir: dir, effects: m}
}

// Build scans the booklet directory and returns one item per PDF file, in
// ascending filename order. The catalog is recomputed on every call; nothing
// is cached between calls.
func (b *Builder) Build() []models.BookletItem {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		// A missing directory is the normal empty state, not a failure.
		slog.Debug("Booklet directory not readable", "dir", b.dir, "err", err)
		return nil
	}

	// os.ReadDir already sorts entries by name ascending.
	var items []models.BookletItem
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		filename := e.Name()
		if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
			continue
		}
		name, year := ParseFilename(filename)
		items = append(items, models.BookletItem{
			Filename: filename,
			Name:     name,
			Year:     year,
			Effect:   b.effects.Match(name, filename),
		})
	}
	return items
}
