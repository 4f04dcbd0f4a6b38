// Package web holds the embedded HTML templates and static assets for the
// booklet site.
package web

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS
