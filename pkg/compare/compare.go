// Package compare is the file-level diff engine: it matches
// normalized paths across two archive snapshots, drops changes that
// are pure export noise, and ranks the rest by severity with a
// human-readable rationale per item.
package compare

import (
	"sort"
	"time"

	"github.com/go-kit/kit/log"

	"github.com/oic-tools/archdiff/pkg/archive"
	"github.com/oic-tools/archdiff/pkg/normalize"
)

// Engine computes diffs between archive snapshots. Safe for
// concurrent use; Diff shares no state between invocations.
type Engine struct {
	logger     log.Logger
	norm       *normalize.Normalizer
	categories []categoryRule
}

// NewEngine constructs an engine. Extra category keywords from an
// optional config file are merged over the built-in keyword table.
func NewEngine(logger log.Logger, norm *normalize.Normalizer, cfg *normalize.Config) *Engine {
	e := &Engine{
		logger:     logger,
		norm:       norm,
		categories: builtinCategories(),
	}
	if cfg != nil {
		e.categories = extendCategories(e.categories, cfg.Categories)
	}
	return e
}

// Diff compares two snapshots and returns every meaningful change.
// It never fails: unparseable or withheld content degrades to generic
// descriptions, never to an error. Distinct original paths that
// normalize to the same key overwrite each other in the lookup
// (last write wins); the count of such collisions is reported in
// Result.Collisions and logged, since it can hide a real change.
func (e *Engine) Diff(left, right []archive.FileRecord) Result {
	defer observeRun(time.Now())

	leftByPath, leftCollisions := e.index(left)
	rightByPath, rightCollisions := e.index(right)
	collisions := leftCollisions + rightCollisions
	if collisions > 0 {
		e.logger.Log("warning", "normalized path collisions", "count", collisions)
	}

	keys := map[string]struct{}{}
	for k := range leftByPath {
		keys[k] = struct{}{}
	}
	for k := range rightByPath {
		keys[k] = struct{}{}
	}
	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	var items []Item
	for _, key := range ordered {
		l, lok := leftByPath[key]
		r, rok := rightByPath[key]
		switch {
		case lok && rok:
			if item, changed := e.diffPair(key, l, r); changed {
				items = append(items, item)
			}
		case lok:
			items = append(items, e.makeItem(key, Removed, &l, nil, false))
		default:
			items = append(items, e.makeItem(key, Added, nil, &r, false))
		}
	}

	items = orderItems(items)
	summary := summarize(items)
	observeItems(summary)
	return Result{Items: items, Summary: summary, Collisions: collisions}
}

func (e *Engine) index(files []archive.FileRecord) (map[string]archive.FileRecord, int) {
	byPath := make(map[string]archive.FileRecord, len(files))
	collisions := 0
	for _, f := range files {
		key := e.norm.Path(f.Path)
		if prev, ok := byPath[key]; ok && prev.Path != f.Path {
			collisions++
			e.logger.Log("warning", "normalized path collision",
				"key", key, "kept", f.Path, "dropped", prev.Path)
		}
		byPath[key] = f
	}
	return byPath, collisions
}

// diffPair decides whether a both-sides match is a real modification.
// Equal hashes are unchanged. Differing hashes with both contents in
// hand are re-normalized: byte-equal normalized contents are export
// noise and suppressed entirely. If either content was withheld we
// cannot verify, so the change is reported rather than dropped.
func (e *Engine) diffPair(key string, l, r archive.FileRecord) (Item, bool) {
	if l.Hash == r.Hash {
		return Item{}, false
	}
	structural := false
	verified := false
	if l.HasContent() && r.HasContent() {
		verified = true
		ln := e.norm.Content(*l.Content, l.Path)
		rn := e.norm.Content(*r.Content, r.Path)
		if ln == rn {
			return Item{}, false
		}
		structural = true
	}
	item := e.makeItem(key, Modified, &l, &r, structural)
	if !verified {
		item.Metadata.ChangeDescription += " (content not available for comparison)"
	}
	return item, true
}

func (e *Engine) makeItem(key string, change ChangeType, l, r *archive.FileRecord, structural bool) Item {
	severity, reason := severityFor(key, change, structural)
	category := e.categoryFor(key)

	item := Item{
		Change:     change,
		Severity:   severity,
		RiskReason: reason,
		Metadata: Metadata{
			Category:       category,
			NormalizedPath: key,
		},
	}
	if l != nil {
		p := l.Path
		item.LeftRef = &p
		item.Metadata.OriginalPaths = append(item.Metadata.OriginalPaths, l.Path)
	}
	if r != nil {
		p := r.Path
		item.RightRef = &p
		item.Metadata.OriginalPaths = append(item.Metadata.OriginalPaths, r.Path)
	}

	item.EntityType = entityTypeFor(category)
	item.EntityName = entityNameFor(l, r)

	// Enrichment prefers the newer side's content where both exist.
	content := pickContent(l, r, change)
	if content != "" {
		if kind, name := extractObjectName(content); name != "" {
			item.Metadata.ObjectName = name
			item.Metadata.ChangeDescription = describeObject(kind, name, change)
		}
		item.Metadata.ActionType = extractActionType(content)
	}
	if item.Metadata.ChangeDescription == "" {
		item.Metadata.ChangeDescription = describeGeneric(category, change)
	}

	item.Patch = makePatch(change, l, r)
	return item
}

func pickContent(l, r *archive.FileRecord, change ChangeType) string {
	if change != Removed && r != nil && r.HasContent() {
		return *r.Content
	}
	if l != nil && l.HasContent() {
		return *l.Content
	}
	if r != nil && r.HasContent() {
		return *r.Content
	}
	return ""
}

// orderItems puts meaningful changes (High, Medium) ahead of minor
// ones, each band sorted by severity rank and otherwise stable.
func orderItems(items []Item) []Item {
	var meaningful, minor []Item
	for _, it := range items {
		if it.Severity.Meaningful() {
			meaningful = append(meaningful, it)
		} else {
			minor = append(minor, it)
		}
	}
	byRank := func(s []Item) {
		sort.SliceStable(s, func(i, j int) bool {
			return severityRank[s[i].Severity] < severityRank[s[j].Severity]
		})
	}
	byRank(meaningful)
	byRank(minor)
	return append(meaningful, minor...)
}

func summarize(items []Item) Summary {
	var s Summary
	for _, it := range items {
		switch it.Severity {
		case High:
			s.High++
		case Medium:
			s.Medium++
		case Low:
			s.Low++
		case Info:
			s.Info++
		}
		s.Categories.bump(it.Metadata.Category)
	}
	s.TotalMeaningful = s.High + s.Medium
	return s
}
