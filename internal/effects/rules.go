package effects

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRules reads a keyword to effect mapping from a YAML file, e.g.
//
//	math: glow-matrix
//	physics: vector-field
//
// Document order is preserved, so the file controls which rule wins when a
// booklet matches several keywords. The parsed rules replace the built-in
// mapping entirely.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects file: %w", err)
	}

	// Decode through yaml.Node rather than a map so the mapping keeps its
	// declared order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse effects file %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("effects file %s is empty", path)
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("effects file %s: expected a keyword to effect mapping", path)
	}

	rules := make([]Rule, 0, len(mapping.Content)/2)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("effects file %s: effect for %q must be a string (line %d)", path, key.Value, key.Line)
		}
		keyword := strings.ToLower(strings.TrimSpace(key.Value))
		effect := strings.TrimSpace(value.Value)
		if keyword == "" {
			return nil, fmt.Errorf("effects file %s: empty keyword (line %d)", path, key.Line)
		}
		if effect == "" {
			return nil, fmt.Errorf("effects file %s: keyword %q has an empty effect (line %d)", path, keyword, key.Line)
		}
		if seen[keyword] {
			return nil, fmt.Errorf("effects file %s: duplicate keyword %q (line %d)", path, keyword, key.Line)
		}
		seen[keyword] = true
		rules = append(rules, Rule{Keyword: keyword, Effect: effect})
	}
	return rules, nil
}
