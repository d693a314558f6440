// Package globs evaluates rule path patterns against target file paths.
//
// Matching uses doublestar semantics: `*` matches within one path segment,
// `**` crosses segment boundaries, `?` matches a single character, and
// character classes are supported. Matching is case-sensitive and anchored:
// a pattern must account for the entire relative path.
package globs

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/rulebook/pkg/logging"
)

// Matches reports whether path satisfies pattern. A malformed pattern never
// matches; the error is logged rather than propagated since patterns are
// validated at load time.
func Matches(pattern, path string) bool {
	matched, err := doublestar.Match(pattern, path)
	if err != nil {
		logger := logging.GetLogger("globs")
		logger.Error().
			Err(err).
			Str("pattern", pattern).
			Str("path", path).
			Msg("error matching glob pattern")
		return false
	}
	return matched
}

// MatchesAny reports whether at least one pattern matches path. An empty
// pattern set never matches.
func MatchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if Matches(pattern, path) {
			return true
		}
	}
	return false
}

// Validate checks pattern syntax without matching anything. Used by the
// store so malformed patterns fail at load rather than silently never
// matching.
func Validate(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return doublestar.ErrBadPattern
	}
	return nil
}
