// Test Type: Unit Test
// Description: Tests for the paths package - XDG path resolution and rules directory fallback

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/rulebook/pkg/paths"
)

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/rules", paths.ExpandHome("~/rules"))
	assert.Equal(t, "/home/tester", paths.ExpandHome("~"))
	assert.Equal(t, "/absolute/path", paths.ExpandHome("/absolute/path"))
	assert.Equal(t, "relative/path", paths.ExpandHome("relative/path"))
	assert.Equal(t, "~backup", paths.ExpandHome("~backup"))
}

func TestResolveRulesDir_ExistingDirWins(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, paths.ResolveRulesDir(dir))
}

func TestResolveRulesDir_MissingDirPassesThrough(t *testing.T) {
	// Point XDG at an empty home so no user-level fallback exists
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	missing := filepath.Join(t.TempDir(), "no-such-rules")
	assert.Equal(t, missing, paths.ResolveRulesDir(missing))
}
