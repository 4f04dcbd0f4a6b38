package effects

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		booklet  string
		filename string
		expected string
	}{
		{
			name:     "keyword in booklet name",
			booklet:  "Math",
			filename: "Math_2021.pdf",
			expected: "glow-matrix",
		},
		{
			name:     "keyword matched case-insensitively in filename",
			booklet:  "Physics_Notes",
			filename: "Physics_Notes_2020.pdf",
			expected: "vector-field",
		},
		{
			name:     "keyword only in filename",
			booklet:  "notes",
			filename: "notes mathematics.pdf",
			expected: "glow-matrix",
		},
		{
			name:     "no keyword",
			booklet:  "Chemistry",
			filename: "Chemistry_2019.pdf",
			expected: "",
		},
	}

	mapper := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapper.Match(tt.booklet, tt.filename)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestMatchFirstRuleWins(t *testing.T) {
	mapper := Default()

	// "math" is declared before "physics", so a booklet containing both
	// keywords gets the math effect.
	result := mapper.Match("math_physics", "math_physics_2021.pdf")
	if result != "glow-matrix" {
		t.Errorf("Expected glow-matrix, got %q", result)
	}
}

func TestMatchRuleOrderControlsPrecedence(t *testing.T) {
	mapper := New([]Rule{
		{Keyword: "physics", Effect: "vector-field"},
		{Keyword: "math", Effect: "glow-matrix"},
	})

	result := mapper.Match("math_physics", "math_physics_2021.pdf")
	if result != "vector-field" {
		t.Errorf("Expected vector-field, got %q", result)
	}
}

func TestMatchUppercaseKeywordNormalized(t *testing.T) {
	mapper := New([]Rule{{Keyword: "CHEM", Effect: "molecule-spin"}})

	result := mapper.Match("Chemistry", "Chemistry_2019.pdf")
	if result != "molecule-spin" {
		t.Errorf("Expected molecule-spin, got %q", result)
	}
}

func TestLoadRulesPreservesOrder(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "effects.yaml")

	// Deliberately non-alphabetical so map iteration would scramble it.
	content := `zeta: last-light
alpha: first-light
math: glow-matrix
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create effects file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	expected := []Rule{
		{Keyword: "zeta", Effect: "last-light"},
		{Keyword: "alpha", Effect: "first-light"},
		{Keyword: "math", Effect: "glow-matrix"},
	}
	if len(rules) != len(expected) {
		t.Fatalf("Expected %d rules, got %d", len(expected), len(rules))
	}
	for i, want := range expected {
		if rules[i] != want {
			t.Errorf("Rule %d: expected %+v, got %+v", i, want, rules[i])
		}
	}

	// A name containing both "zeta" and "alpha" resolves to the first rule.
	mapper := New(rules)
	if got := mapper.Match("zeta_alpha", "zeta_alpha.pdf"); got != "last-light" {
		t.Errorf("Expected last-light, got %q", got)
	}
}

func TestLoadRulesLowercasesKeywords(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "effects.yaml")

	if err := os.WriteFile(path, []byte("Math: glow-matrix\n"), 0644); err != nil {
		t.Fatalf("Failed to create effects file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rules) != 1 || rules[0].Keyword != "math" {
		t.Errorf("Expected lowercased keyword 'math', got %+v", rules)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not a mapping",
			content: "- math\n- physics\n",
		},
		{
			name:    "duplicate keyword",
			content: "math: glow-matrix\nmath: other\n",
		},
		{
			name:    "empty effect",
			content: "math: \"\"\n",
		},
		{
			name:    "nested value",
			content: "math:\n  effect: glow-matrix\n",
		},
		{
			name:    "invalid yaml",
			content: "math: [unclosed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create effects file: %v", err)
			}
			if _, err := LoadRules(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("/nonexistent/effects.yaml"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
