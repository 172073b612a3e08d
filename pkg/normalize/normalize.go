// Package normalize removes export-tool-generated noise from archive
// paths and file contents, so that two exports of the same
// configuration compare as equal. The export tool regenerates numeric
// ids, UUIDs and timestamps on every run; left alone they would make
// every file look modified.
package normalize

import (
	"path/filepath"
	"strings"
)

// A Normalizer holds the ordered rule sets. The zero value is not
// usable; construct with New or NewWithConfig.
type Normalizer struct {
	idRules  []Rule
	xmlRules []Rule
}

// New returns a Normalizer with the built-in rules.
func New() *Normalizer {
	return &Normalizer{
		idRules:  volatileIDRules,
		xmlRules: xmlAttrRules,
	}
}

// NewWithConfig returns a Normalizer with the built-in rules plus any
// extra rules from the config. Extra rules run after the built-ins.
func NewWithConfig(cfg *Config) (*Normalizer, error) {
	n := New()
	if cfg == nil {
		return n, nil
	}
	extra, err := cfg.compileRules()
	if err != nil {
		return nil, err
	}
	n.idRules = append(append([]Rule{}, volatileIDRules...), extra...)
	return n, nil
}

// Path normalizes an archive path: volatile identifier segments are
// collapsed, duplicate separators folded, and the result lowercased
// and trimmed. Path is idempotent.
func (n *Normalizer) Path(p string) string {
	for _, r := range n.idRules {
		p = r.apply(p)
	}
	p = multiSeparator.ReplaceAllString(p, "/")
	return strings.TrimSpace(strings.ToLower(p))
}

// Content normalizes file content for comparison, dispatching on the
// path's extension. XML-family files get generated attributes
// stripped, volatile ids collapsed and whitespace runs folded to
// single spaces; re-serialization of XML is not byte-stable, so
// formatting there carries no signal. Everything else (JSON,
// properties, ...) gets only the volatile-id substitutions —
// collapsing whitespace in those formats could mask real changes.
func (n *Normalizer) Content(content, path string) string {
	if xmlExtensions[strings.ToLower(filepath.Ext(path))] {
		for _, r := range n.xmlRules {
			content = r.apply(content)
		}
		for _, r := range n.idRules {
			content = r.apply(content)
		}
		return strings.TrimSpace(whitespaceRun.ReplaceAllString(content, " "))
	}
	for _, r := range n.idRules {
		content = r.apply(content)
	}
	return content
}
