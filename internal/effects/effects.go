package effects

import "strings"

// Rule maps a keyword to the effect applied when the keyword appears in a
// booklet's name or filename.
type Rule struct {
	Keyword string
	Effect  string
}

// Mapper assigns presentation effects to booklets by ordered keyword match.
type Mapper struct {
	rules []Rule
}

// New creates a Mapper from an ordered rule list. Keywords are lowercased so
// matching stays case-insensitive regardless of how the rules were written.
func New(rules []Rule) *Mapper {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = Rule{Keyword: strings.ToLower(r.Keyword), Effect: r.Effect}
	}
	return &Mapper{rules: normalized}
}

// Default returns the built-in keyword mapping. Earlier rules win when a
// booklet matches more than one keyword.
func Default() *Mapper {
	return New([]Rule{
		{Keyword: "math", Effect: "glow-matrix"},
		{Keyword: "physics", Effect: "vector-field"},
	})
}

// Match returns the effect for the first rule whose keyword occurs in the
// booklet name or filename, or the empty string when none apply. A nil
// Mapper applies no effects.
func (m *Mapper) Match(name, filename string) string {
	if m == nil {
		return ""
	}
	haystack := strings.ToLower(name + " " + filename)
	for _, r := range m.rules {
		if strings.Contains(haystack, r.Keyword) {
			return r.Effect
		}
	}
	return ""
}
