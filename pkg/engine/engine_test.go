// Test Type: Unit Test
// Description: Tests for the engine package - queries, reload swapping, and reload failure behavior

package engine_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/engine"
	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/testutil"
)

func TestNew_LoadFailure(t *testing.T) {
	_, err := engine.New(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestCompose(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"go.mdc": {Globs: []string{"**/*.go"}, Body: "Go rules."},
	})

	eng, err := engine.New(root)
	require.NoError(t, err)

	doc, err := eng.Compose("cmd/main.go")
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "Go rules.", doc.Segments[0].Text)
}

func TestReload_SwapsStore(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"go.mdc": {Globs: []string{"**/*.go"}, Body: "Old guidance."},
	})

	eng, err := engine.New(root)
	require.NoError(t, err)

	testutil.WriteFile(t, root, "go.mdc",
		testutil.RuleSpec{Globs: []string{"**/*.go"}, Body: "New guidance."}.Content())
	require.NoError(t, eng.Reload())

	doc, err := eng.Compose("main.go")
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "New guidance.", doc.Segments[0].Text)
}

func TestReload_FailureKeepsOldStore(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"go.mdc": {Globs: []string{"**/*.go"}, Body: "Stable guidance."},
	})

	eng, err := engine.New(root)
	require.NoError(t, err)

	// Introduce a duplicate so the reload fails
	testutil.WriteFile(t, root, "nested/go.mdc",
		testutil.RuleSpec{Globs: []string{"**/*.go"}, Body: "dup"}.Content())

	err = eng.Reload()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateName))

	// Old store still answers queries
	doc, err := eng.Compose("main.go")
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "Stable guidance.", doc.Segments[0].Text)
}

func TestCompose_ConcurrentCallers(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"base.mdc": {AlwaysApply: true, Body: "Concurrent-safe."},
	})

	eng, err := engine.New(root)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := eng.Compose("some/path.go")
			assert.NoError(t, err)
			assert.Len(t, doc.Segments, 1)
		}()
	}
	wg.Wait()
}

func TestReload_PicksUpRemovedRules(t *testing.T) {
	root := testutil.SetupRules(t, map[string]testutil.RuleSpec{
		"go.mdc": {Globs: []string{"**/*.go"}, Body: "Go."},
		"ts.mdc": {Globs: []string{"**/*.ts"}, Body: "TS."},
	})

	eng, err := engine.New(root)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(root, "ts.mdc")))
	require.NoError(t, eng.Reload())

	doc, err := eng.Compose("index.ts")
	require.NoError(t, err)
	assert.True(t, doc.Empty())
}
