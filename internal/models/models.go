package models

// BookletItem represents a single PDF booklet found in the booklet directory
type BookletItem struct {
	Filename string `json:"filename"` // exact on-disk name, always ends in .pdf
	Name     string `json:"name"`
	Year     string `json:"year,omitempty"`
	Effect   string `json:"effect,omitempty"` // presentation hint, e.g. "glow-matrix"
}
