package normalize

import (
	"regexp"
)

// Rule is one substitution in an ordered normalization pass. Rules
// are applied in the order they are listed; every rule must be
// idempotent on its own output, so that the whole pass is too.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

func (r Rule) apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

// Identifier segments the export tool regenerates on every run. These
// apply to both paths and file contents; anything matching here
// carries no information about what the integration actually does.
var volatileIDRules = []Rule{
	{"processor-id", regexp.MustCompile(`(?i)processor_\d+`), "processor"},
	{"resourcegroup-id", regexp.MustCompile(`(?i)resourcegroup_\d+`), "resourcegroup"},
	{"application-id", regexp.MustCompile(`(?i)application_\d+`), "application"},
	{"inbound-id", regexp.MustCompile(`(?i)inbound_\d+`), "inbound"},
	{"outbound-id", regexp.MustCompile(`(?i)outbound_\d+`), "outbound"},
	{"itg-uuid", regexp.MustCompile(`(?i)itg_[0-9a-f]{8}(?:-?[0-9a-f]{4}){3}-?[0-9a-f]{12}`), "itg"},
	{"itg-hex", regexp.MustCompile(`(?i)itg_[0-9a-f]{8,}`), "itg"},
	{"req-hex", regexp.MustCompile(`(?i)req_[0-9a-f]{4,}`), "req"},
	{"res-hex", regexp.MustCompile(`(?i)res_[0-9a-f]{4,}`), "res"},
	{"version-suffix", regexp.MustCompile(`_\d{2}\.\d{2}\.\d{4}`), ""},
	{"duplicate-suffix", regexp.MustCompile(`\s*\(\d+\)`), ""},
}

// Attributes the export serializer stamps into XML-family files.
// Stripped wholesale; their values are timestamps or generated ids.
var xmlAttrRules = []Rule{
	{"generated-attrs", regexp.MustCompile(`(?i)\s+(?:timestamp|createdTime|modifiedTime|lastUpdatedTime|xml:id|generatedId)\s*=\s*(?:"[^"]*"|'[^']*')`), ""},
	{"orajs-xmlns", regexp.MustCompile(`(?i)\s+xmlns:orajs\d+\s*=\s*(?:"[^"]*"|'[^']*')`), ""},
	{"orajs-prefix", regexp.MustCompile(`(?i)\borajs\d+:`), "orajs:"},
}

var (
	multiSeparator = regexp.MustCompile(`/{2,}`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// xmlExtensions are the extensions that get the aggressive XML-family
// content normalization, whitespace collapsing included. Whitespace
// in these formats is a serialization artifact, not content.
var xmlExtensions = map[string]bool{
	".xml":  true,
	".xsl":  true,
	".xslt": true,
	".wsdl": true,
	".xsd":  true,
	".jca":  true,
}
