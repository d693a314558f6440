package rules

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/globs"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/types"
)

// DefaultExtensions are the file extensions recognized as rule documents.
var DefaultExtensions = []string{".mdc", ".md"}

// Store is the immutable index of all rule documents under one root. It is
// built once by Load and safe for concurrent readers; reloading means
// building a new Store.
type Store struct {
	root     string
	docs     map[string]*types.RuleDocument
	names    []string
	warnings []types.Warning
}

type loadOptions struct {
	extensions   []string
	rootDocument string
}

// LoadOption customizes store construction.
type LoadOption func(*loadOptions)

// WithExtensions overrides the recognized rule file extensions.
func WithExtensions(exts ...string) LoadOption {
	return func(o *loadOptions) {
		o.extensions = exts
	}
}

// WithRootDocument adds a plain-text document outside the rules directory
// as an extra always-apply rule with no globs. A missing file is skipped.
func WithRootDocument(path string) LoadOption {
	return func(o *loadOptions) {
		o.rootDocument = path
	}
}

// Load builds a store from every rule document under root. Any parse or
// duplicate-name failure aborts the whole load; the engine never operates
// on a partial rule set.
func Load(root string, opts ...LoadOption) (*Store, error) {
	logger := logging.GetLogger("rules.store")
	defer logging.LogOperationStart(logger, "load")()

	options := loadOptions{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(&options)
	}

	store := &Store{
		root: root,
		docs: make(map[string]*types.RuleDocument),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrLoad, "reading rules directory %s", root)
		}
		if d.IsDir() {
			return nil
		}
		if !recognized(path, options.extensions) {
			return nil
		}

		doc, unknown, err := parseFile(path)
		if err != nil {
			return err
		}
		return store.add(doc, unknown)
	})
	if err != nil {
		return nil, err
	}

	if options.rootDocument != "" {
		if err := store.addRootDocument(options.rootDocument); err != nil {
			return nil, err
		}
	}

	sort.Strings(store.names)

	logger.Debug().
		Str("root", root).
		Int("rules", len(store.names)).
		Int("warnings", len(store.warnings)).
		Msg("store loaded")

	return store, nil
}

// add indexes a parsed document, recording its load-time warnings.
func (s *Store) add(doc *types.RuleDocument, unknownKeys []string) error {
	if existing, ok := s.docs[doc.Name]; ok {
		return errors.Newf(errors.ErrDuplicateName,
			"rule name %q defined by both %s and %s", doc.Name, existing.Source, doc.Source).
			WithDetail("rule", doc.Name)
	}

	s.docs[doc.Name] = doc
	s.names = append(s.names, doc.Name)

	for _, key := range unknownKeys {
		s.warnings = append(s.warnings, types.Warning{
			Kind: types.WarnUnknownKey,
			Rule: doc.Name,
			Text: fmt.Sprintf("unrecognized frontmatter key %q", key),
		})
	}

	if !doc.Selectable() {
		s.warnings = append(s.warnings, types.Warning{
			Kind: types.WarnUnreachableRule,
			Rule: doc.Name,
			Text: "rule has no globs and alwaysApply is false; no query will ever select it",
		})
	}

	return nil
}

// addRootDocument loads the optional top-level document as an extra
// always-apply rule. Skipped silently when the file does not exist.
func (s *Store) addRootDocument(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger := logging.GetLogger("rules.store")
			logger.Debug().
				Str("path", path).
				Msg("no root document")
			return nil
		}
		return errors.Wrapf(err, errors.ErrLoad, "reading root document %s", path)
	}

	doc := &types.RuleDocument{
		Name:        stem(path),
		AlwaysApply: true,
		Body:        segmentBody(strings.TrimSpace(string(content))),
		Source:      path,
	}
	return s.add(doc, nil)
}

// Get returns the document with the given name.
func (s *Store) Get(name string) (*types.RuleDocument, bool) {
	doc, ok := s.docs[name]
	return doc, ok
}

// Names returns all rule names in lexicographic order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Documents returns all documents in lexicographic name order.
func (s *Store) Documents() []*types.RuleDocument {
	out := make([]*types.RuleDocument, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.docs[name])
	}
	return out
}

// Len returns the number of rules in the store.
func (s *Store) Len() int {
	return len(s.names)
}

// Root returns the directory the store was loaded from.
func (s *Store) Root() string {
	return s.root
}

// Warnings returns the non-fatal issues observed at load time.
func (s *Store) Warnings() []types.Warning {
	out := make([]types.Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// parseFile reads one rule file into a document plus its unrecognized
// frontmatter keys.
func parseFile(path string) (*types.RuleDocument, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrLoad, "reading rule file %s", path)
	}

	name := stem(path)

	header, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, nil, attachRule(err, name, path)
	}

	fm, unknown, err := parseFrontmatter(header)
	if err != nil {
		return nil, nil, attachRule(err, name, path)
	}

	for _, pattern := range fm.Globs {
		if err := globs.Validate(pattern); err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrParse,
				"rule %q has malformed glob %q", name, pattern).
				WithDetail("rule", name)
		}
	}

	doc := &types.RuleDocument{
		Name:        name,
		Description: fm.Description,
		Globs:       fm.Globs,
		AlwaysApply: fm.AlwaysApply,
		Body:        segmentBody(strings.TrimSpace(string(body))),
		Source:      path,
	}
	return doc, unknown, nil
}

// attachRule decorates a parse error with the rule it came from.
func attachRule(err error, name, path string) error {
	var rbErr *errors.RulebookError
	if e, ok := err.(*errors.RulebookError); ok {
		rbErr = e
	} else {
		rbErr = errors.Wrap(err, errors.ErrParse, "parsing rule file")
	}
	rbErr.Message = fmt.Sprintf("rule %q: %s", name, rbErr.Message)
	return rbErr.WithDetail("rule", name).WithDetail("source", path)
}

// recognized reports whether path carries one of the rule extensions.
func recognized(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// stem derives a rule name from its file path: base name, extension
// stripped, case preserved.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
