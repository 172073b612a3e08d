package compare

import (
	"fmt"
	"path"
	"regexp"

	"github.com/oic-tools/archdiff/pkg/archive"
)

// Object-name extraction patterns, tried in order. These recognize
// the named configuration objects that show up in exported archives;
// when one hits, the item's description names the concrete object
// instead of falling back to its category.
var objectNamePatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"adapter configuration", regexp.MustCompile(`(?i)<(?:\w+:)?adapter[^>]*?\sname\s*=\s*"([^"]+)"`)},
	{"stored procedure", regexp.MustCompile(`(?i)\b(?:procedureName|procedure|sproc)\s*=\s*"([^"]+)"`)},
	{"database table", regexp.MustCompile(`(?i)\btableName\s*=\s*"([^"]+)"`)},
	{"connection", regexp.MustCompile(`(?i)<(?:\w+:)?connection[^>]*?\sname\s*=\s*"([^"]+)"`)},
	{"connection", regexp.MustCompile(`(?i)\bconnectionName\s*=\s*"([^"]+)"`)},
	{"WSDL operation", regexp.MustCompile(`(?i)<(?:\w+:)?operation\s+name\s*=\s*"([^"]+)"`)},
	{"schema element", regexp.MustCompile(`(?i)<(?:\w+:)?element[^>]*?\sname\s*=\s*"([^"]+)"`)},
}

var actionTypePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\binteractionSpec[^>]*?className\s*=\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)\bactivationSpec[^>]*?className\s*=\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)\badapter\s*=\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)\badapterType\s*=\s*"([^"]+)"`),
}

// extractObjectName pulls the first recognizable object name out of
// the content. Returns empty strings when nothing matches; it never
// fails on malformed content, since all patterns are line-agnostic
// regexes rather than an XML parse.
func extractObjectName(content string) (kind, name string) {
	for _, p := range objectNamePatterns {
		if m := p.re.FindStringSubmatch(content); m != nil {
			return p.kind, m[1]
		}
	}
	return "", ""
}

func extractActionType(content string) string {
	for _, re := range actionTypePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}

func describeObject(kind, name string, change ChangeType) string {
	return fmt.Sprintf("%s %q %s", kind, name, verbFor(change))
}

func describeGeneric(category Category, change ChangeType) string {
	var what string
	switch category {
	case CategoryConnections:
		what = "a connection configuration"
	case CategoryMappings:
		what = "a data mapping"
	case CategoryFlowLogic:
		what = "orchestration flow logic"
	case CategoryLookups:
		what = "a lookup table"
	case CategoryConfiguration:
		what = "integration configuration"
	default:
		what = "a file"
	}
	return fmt.Sprintf("%s %s", what, verbFor(change))
}

func entityNameFor(l, r *archive.FileRecord) string {
	if r != nil {
		return path.Base(r.Path)
	}
	if l != nil {
		return path.Base(l.Path)
	}
	return ""
}
