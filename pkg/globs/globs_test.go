// Test Type: Unit Test
// Description: Tests for the globs package - pattern matching semantics

package globs_test

import (
	"testing"

	"github.com/arthur-debert/rulebook/pkg/globs"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		// * stays within one segment
		{"star_same_segment", "*.ts", "index.ts", true},
		{"star_no_separator_cross", "*.ts", "src/index.ts", false},

		// ** crosses segments
		{"doublestar_nested", "**/*.tsx", "app/components/Button.tsx", true},
		{"doublestar_wrong_extension", "**/*.tsx", "app/components/Button.ts", false},
		{"doublestar_root_level", "**/*.tsx", "Button.tsx", true},
		{"doublestar_alone_matches_all", "**", "a/b/c/d.go", true},
		{"doublestar_alone_matches_empty", "**", "", true},

		// ? matches exactly one non-separator character
		{"question_single_char", "file?.txt", "file1.txt", true},
		{"question_not_separator", "a?b", "a/b", false},
		{"question_not_two_chars", "file?.txt", "file12.txt", false},

		// character classes
		{"class_match", "file[0-9].txt", "file7.txt", true},
		{"class_no_match", "file[0-9].txt", "fileA.txt", false},

		// anchored, not substring
		{"anchored_prefix_only", "src/*.go", "pkg/src/main.go", false},
		{"anchored_full_path", "src/*.go", "src/main.go", true},

		// case-sensitive
		{"case_sensitive", "*.TSX", "Button.tsx", false},

		// malformed pattern never matches
		{"malformed_pattern", "[", "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, globs.Matches(tt.pattern, tt.path))
		})
	}
}

func TestMatchesAny(t *testing.T) {
	t.Run("empty_set_never_matches", func(t *testing.T) {
		assert.False(t, globs.MatchesAny(nil, "main.go"))
		assert.False(t, globs.MatchesAny([]string{}, "main.go"))
	})

	t.Run("one_of_many", func(t *testing.T) {
		patterns := []string{"*.md", "docs/**", "**/*.go"}
		assert.True(t, globs.MatchesAny(patterns, "pkg/rules/store.go"))
		assert.False(t, globs.MatchesAny(patterns, "Makefile"))
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, globs.Validate("**/*.tsx"))
	assert.Error(t, globs.Validate("["))
}
