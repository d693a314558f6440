// Package compose merges the selected, reference-expanded rules for a
// target path into one consolidated guidance document.
package compose

import (
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/resolve"
	"github.com/arthur-debert/rulebook/pkg/rules"
	"github.com/arthur-debert/rulebook/pkg/selector"
	"github.com/arthur-debert/rulebook/pkg/types"
)

// Compose selects the rules applicable to targetPath, expands their
// references, and concatenates the results in selector order. When the
// same literal text shows up more than once, typically because a rule is
// both selected directly and referenced by another selected rule, only its
// first occurrence is kept. A path matched by no rules yields an empty
// document, not an error.
func Compose(store *rules.Store, targetPath string) (*types.ResolvedDocument, error) {
	logger := logging.GetLogger("compose")
	defer logging.LogOperationStart(logger, "compose")()

	doc := &types.ResolvedDocument{
		TargetPath: targetPath,
		Warnings:   store.Warnings(),
	}

	// De-duplication is scoped across candidates: text already contributed
	// by an earlier selected rule is dropped, but a repeat inside a single
	// resolved body is kept as written.
	seen := make(map[string]bool)
	for _, candidate := range selector.Select(store, targetPath) {
		segments, err := resolve.Resolve(store, candidate)
		if err != nil {
			return nil, err
		}
		var added []string
		for _, seg := range segments {
			if seg.Text == "" || seen[seg.Text] {
				continue
			}
			added = append(added, seg.Text)
			doc.Segments = append(doc.Segments, seg)
		}
		for _, text := range added {
			seen[text] = true
		}
	}

	logger.Debug().
		Str("path", targetPath).
		Int("segments", len(doc.Segments)).
		Msg("composed document")

	return doc, nil
}
