// Test Type: Integration Test
// Description: Tests for the rulebook command - CLI wiring end to end

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/testutil"
)

// runCommand executes the root command with args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestComposeCommand_JSON(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"base.mdc": {AlwaysApply: true, Body: "House rules."},
		"ts.mdc":   {Globs: []string{"**/*.ts"}, Body: "TS rules."},
	})

	out, err := runCommand(t, "compose", "--dir", root, "--json", "src/index.ts")
	require.NoError(t, err)

	var result struct {
		Segments []struct {
			Source string `json:"source"`
			Text   string `json:"text"`
		} `json:"segments"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Segments, 2)
	assert.Equal(t, "base", result.Segments[0].Source)
	assert.Equal(t, "ts", result.Segments[1].Source)
}

func TestComposeCommand_Raw(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"go.mdc": {Globs: []string{"**/*.go"}, Body: "Go guidance."},
	})

	out, err := runCommand(t, "compose", "--dir", root, "--raw", "cmd/main.go")
	require.NoError(t, err)
	assert.Contains(t, out, "Go guidance.")
}

func TestComposeCommand_MissingRulesDir(t *testing.T) {
	_, err := runCommand(t, "compose", "--dir", "/nonexistent/rules", "--raw", "x.go")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"typescript.mdc": {Description: "TS conventions", Globs: []string{"**/*.ts"}, Body: "x"},
		"base.mdc":       {AlwaysApply: true, Body: "y"},
	})

	out, err := runCommand(t, "list", "--dir", root)
	require.NoError(t, err)

	assert.Contains(t, out, "base")
	assert.Contains(t, out, "typescript")
	assert.Contains(t, out, "TS conventions")
}

func TestListCommand_EmptyStore(t *testing.T) {
	out, err := runCommand(t, "list", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoRules)
}

func TestCheckCommand_Clean(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"a.mdc": {AlwaysApply: true, Body: "A. @b.mdc"},
		"b.mdc": {Globs: []string{"**"}, Body: "B."},
	})

	out, err := runCommand(t, "check", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rules resolve cleanly")
}

func TestCheckCommand_ReportsCycle(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"a.mdc": {AlwaysApply: true, Body: "@b.mdc"},
		"b.mdc": {AlwaysApply: true, Body: "@a.mdc"},
	})

	out, err := runCommand(t, "check", "--dir", root)
	require.Error(t, err)
	assert.Contains(t, out, "a")
	assert.Contains(t, err.Error(), "failed to resolve")
}

func TestCheckCommand_ReportsMissingReference(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"a.mdc": {AlwaysApply: true, Body: "@ghost.mdc"},
	})

	_, err := runCommand(t, "check", "--dir", root)
	require.Error(t, err)
}

func TestRootCommand_NoSubcommand(t *testing.T) {
	_, err := runCommand(t)
	assert.Error(t, err)
}

func TestUsageTemplate_Headings(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)

	// Section headings come from the custom usage template
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "AVAILABLE COMMANDS:")
	assert.Contains(t, out, "FLAGS:")
}

func TestUsageTemplate_InheritedBySubcommands(t *testing.T) {
	out, err := runCommand(t, "compose", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "GLOBAL FLAGS:")
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "rulebook")
}
