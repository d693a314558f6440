// Package testutil provides helpers for building rule directory trees in
// tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RuleSpec describes one rule file to write.
type RuleSpec struct {
	Description string
	Globs       []string
	AlwaysApply bool
	Body        string
}

// Content renders the rule file content with its frontmatter header.
func (r RuleSpec) Content() string {
	var b strings.Builder
	b.WriteString("---\n")
	if r.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", r.Description)
	}
	if len(r.Globs) > 0 {
		quoted := make([]string, len(r.Globs))
		for i, g := range r.Globs {
			quoted[i] = fmt.Sprintf("%q", g)
		}
		fmt.Fprintf(&b, "globs: [%s]\n", strings.Join(quoted, ", "))
	}
	fmt.Fprintf(&b, "alwaysApply: %t\n", r.AlwaysApply)
	b.WriteString("---\n")
	b.WriteString(r.Body)
	if !strings.HasSuffix(r.Body, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// SetupRules writes the given rules under a fresh temp directory and
// returns its path. Map keys are file names relative to the root, e.g.
// "typescript.mdc" or "frontend/react.mdc".
func SetupRules(t *testing.T, specs map[string]RuleSpec) string {
	t.Helper()

	root := t.TempDir()
	for name, spec := range specs {
		WriteFile(t, root, name, spec.Content())
	}
	return root
}

// WriteFile writes one file under root, creating parent directories.
func WriteFile(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
