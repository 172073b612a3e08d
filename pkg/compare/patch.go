package compare

import (
	"fmt"
	"strings"

	"github.com/oic-tools/archdiff/pkg/archive"
	"github.com/oic-tools/archdiff/pkg/textdiff"
)

// maxPatchLines caps each side of a Modified patch; anything past it
// collapses into an overflow counter.
const maxPatchLines = 50

// makePatch renders the textual patch for an item. Added and Removed
// carry the whole content behind a marker banner. Modified gets a
// coarse line-set difference (lines present on one side's line set
// and absent from the other's, compared trimmed) — quick to scan,
// not an exact alignment; the textdiff package does exact alignment
// for callers that want it.
func makePatch(change ChangeType, l, r *archive.FileRecord) string {
	switch change {
	case Added:
		if r == nil || !r.HasContent() {
			return ""
		}
		return fmt.Sprintf("+++ added: %s\n%s", r.Path, *r.Content)
	case Removed:
		if l == nil || !l.HasContent() {
			return ""
		}
		return fmt.Sprintf("--- removed: %s\n%s", l.Path, *l.Content)
	default:
		if l == nil || r == nil || !l.HasContent() || !r.HasContent() {
			return ""
		}
		return lineSetPatch(*l.Content, *r.Content)
	}
}

func lineSetPatch(left, right string) string {
	leftLines := textdiff.SplitLines(left)
	rightLines := textdiff.SplitLines(right)

	leftSet := lineSet(leftLines)
	rightSet := lineSet(rightLines)

	var b strings.Builder
	writeOnly(&b, "-", leftLines, rightSet)
	writeOnly(&b, "+", rightLines, leftSet)
	return strings.TrimSuffix(b.String(), "\n")
}

func lineSet(lines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[strings.TrimSpace(line)] = struct{}{}
	}
	return set
}

func writeOnly(b *strings.Builder, marker string, lines []string, other map[string]struct{}) {
	shown := 0
	overflow := 0
	seen := map[string]struct{}{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, ok := other[trimmed]; ok {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		if shown >= maxPatchLines {
			overflow++
			continue
		}
		fmt.Fprintf(b, "%s %s\n", marker, trimmed)
		shown++
	}
	if overflow > 0 {
		fmt.Fprintf(b, "%s ... (%d more lines)\n", marker, overflow)
	}
}
