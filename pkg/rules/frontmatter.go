package rules

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rulebook/pkg/errors"
)

// delimiter is the line separating the frontmatter header from the body.
const delimiter = "---"

// Frontmatter is the fixed-schema header of a rule file. Keys outside this
// schema are reported, not stored.
type Frontmatter struct {
	Description string
	Globs       []string
	AlwaysApply bool
}

// splitFrontmatter separates raw file content into the header block and the
// body. The file must open with a delimiter line and contain a closing one.
func splitFrontmatter(content []byte) (header, body []byte, err error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	lines := strings.SplitAfter(string(normalized), "\n")

	if len(lines) == 0 || strings.TrimRight(lines[0], "\n") != delimiter {
		return nil, nil, errors.New(errors.ErrParse, "missing frontmatter opening delimiter")
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\n") == delimiter {
			header = []byte(strings.Join(lines[1:i], ""))
			body = []byte(strings.Join(lines[i+1:], ""))
			return header, body, nil
		}
	}

	return nil, nil, errors.New(errors.ErrParse, "missing frontmatter closing delimiter")
}

// parseFrontmatter decodes the header block into the fixed schema and
// returns any unrecognized keys alongside it.
func parseFrontmatter(header []byte) (Frontmatter, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(header, &root); err != nil {
		return Frontmatter{}, nil, errors.Wrap(err, errors.ErrParse, "invalid frontmatter")
	}

	var fm Frontmatter
	var unknown []string

	if len(root.Content) == 0 {
		// Empty header block: all keys absent
		return fm, nil, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return Frontmatter{}, nil, errors.New(errors.ErrParse, "frontmatter is not a key/value block")
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1]

		switch key {
		case "description":
			if err := value.Decode(&fm.Description); err != nil {
				return Frontmatter{}, nil, errors.Wrap(err, errors.ErrParse, "description must be a string")
			}
		case "globs":
			patterns, err := decodeGlobs(value)
			if err != nil {
				return Frontmatter{}, nil, err
			}
			fm.Globs = patterns
		case "alwaysApply":
			if value.Tag != "!!bool" {
				return Frontmatter{}, nil, errors.Newf(errors.ErrParse,
					"alwaysApply must be a boolean literal, got %q", value.Value)
			}
			if err := value.Decode(&fm.AlwaysApply); err != nil {
				return Frontmatter{}, nil, errors.Wrap(err, errors.ErrParse, "alwaysApply must be a boolean literal")
			}
		default:
			unknown = append(unknown, key)
		}
	}

	return fm, unknown, nil
}

// decodeGlobs accepts either a YAML sequence of pattern strings or a single
// scalar holding a comma-separated pattern list.
func decodeGlobs(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var patterns []string
		if err := node.Decode(&patterns); err != nil {
			return nil, errors.Wrap(err, errors.ErrParse, "globs must be a list of strings")
		}
		for _, p := range patterns {
			if strings.TrimSpace(p) == "" {
				return nil, errors.New(errors.ErrParse, "globs entries must be non-empty")
			}
		}
		return patterns, nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		var raw string
		if err := node.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrParse, "globs must be a list of strings")
		}
		var patterns []string
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				return nil, errors.New(errors.ErrParse, "globs entries must be non-empty")
			}
			patterns = append(patterns, part)
		}
		return patterns, nil

	default:
		return nil, errors.New(errors.ErrParse, "globs must be a list of strings")
	}
}
