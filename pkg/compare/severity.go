package compare

import (
	"path"
	"strings"
)

// severityFor applies the path-signal table, first match wins. The
// path is already normalized (lowercased). structural is only
// meaningful for Modified mapping files: it says whether an XML diff
// survived content normalization.
func severityFor(p string, change ChangeType, structural bool) (Severity, string) {
	ext := path.Ext(p)

	switch {
	case strings.Contains(p, "orchestration"):
		return High, "orchestration flow logic " + verbFor(change) + "; the integration's runtime behavior may differ"

	case ext == ".xsl" || ext == ".xslt" || strings.Contains(p, "mapping"):
		switch change {
		case Removed:
			return High, "a data mapping was removed; transformed fields will be missing from downstream payloads"
		case Added:
			return Medium, "a data mapping was added; verify the new transformation against consumers"
		default:
			if structural {
				return High, "a data mapping changed structurally; field transformations may produce different output"
			}
			return Medium, "a data mapping changed; review the transformation for intended field changes"
		}

	case strings.Contains(p, "connection") || ext == ".jca":
		return Medium, "a connection definition " + verbFor(change) + "; endpoint or credential wiring may be affected"

	case ext == ".wsdl" || ext == ".xsd":
		return Medium, "an interface contract (WSDL/XSD) " + verbFor(change) + "; message shapes may no longer match"

	case strings.Contains(p, "lookup") || strings.Contains(p, "dvm"):
		return Low, "a lookup table " + verbFor(change) + "; value translations may differ"

	case strings.Contains(p, "schedule"):
		return Low, "a schedule definition " + verbFor(change) + "; run timing may differ"

	case change == Modified && strings.Contains(p, "tracking"):
		return Low, "tracking configuration changed; only observability fields are affected"

	case change == Modified && ext == ".properties":
		return Low, "a properties file changed; runtime settings may differ"

	case change == Modified && (strings.Contains(p, "fault") || strings.Contains(p, "error")):
		return Low, "fault handling configuration changed; error paths may behave differently"
	}

	return Info, "file " + verbFor(change) + " with no recognized risk signal"
}

func verbFor(change ChangeType) string {
	switch change {
	case Added:
		return "was added"
	case Removed:
		return "was removed"
	default:
		return "changed"
	}
}

type categoryRule struct {
	category Category
	keywords []string
}

// Keyword order matters: the first category with a matching keyword
// wins, so the more specific buckets come first.
func builtinCategories() []categoryRule {
	return []categoryRule{
		{CategoryFlowLogic, []string{"orchestration", ".bpel", "processor", "flow"}},
		{CategoryMappings, []string{".xsl", ".xslt", "mapping", "transform"}},
		{CategoryConnections, []string{"connection", ".jca", ".wsdl", ".xsd", "adapter"}},
		{CategoryLookups, []string{"lookup", "dvm"}},
		{CategoryConfiguration, []string{".properties", "schedule", "tracking", "config"}},
	}
}

func extendCategories(rules []categoryRule, extra map[string][]string) []categoryRule {
	if len(extra) == 0 {
		return rules
	}
	out := make([]categoryRule, len(rules))
	for i, r := range rules {
		out[i] = r
		if kws, ok := extra[string(r.category)]; ok {
			out[i].keywords = append(append([]string{}, r.keywords...), kws...)
		}
	}
	return out
}

func (e *Engine) categoryFor(p string) Category {
	for _, rule := range e.categories {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

func entityTypeFor(category Category) string {
	switch category {
	case CategoryConnections:
		return "Connection"
	case CategoryMappings:
		return "Mapping"
	case CategoryFlowLogic:
		return "Orchestration"
	case CategoryLookups:
		return "Lookup"
	case CategoryConfiguration:
		return "Configuration"
	default:
		return "File"
	}
}
