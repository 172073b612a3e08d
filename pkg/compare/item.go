package compare

// ChangeType says what happened to a file between the two snapshots.
type ChangeType string

const (
	Added    ChangeType = "Added"
	Removed  ChangeType = "Removed"
	Modified ChangeType = "Modified"
)

// Severity ranks the impact of a change. High and Medium are the
// "meaningful" band; Low and Info are noise-adjacent.
type Severity string

const (
	High   Severity = "High"
	Medium Severity = "Medium"
	Low    Severity = "Low"
	Info   Severity = "Info"
)

var severityRank = map[Severity]int{
	High:   0,
	Medium: 1,
	Low:    2,
	Info:   3,
}

// Meaningful reports whether the severity is in the band that counts
// towards Summary.TotalMeaningful.
func (s Severity) Meaningful() bool {
	return s == High || s == Medium
}

// Category buckets a change by the kind of artifact it touches.
type Category string

const (
	CategoryConnections   Category = "connections"
	CategoryMappings      Category = "mappings"
	CategoryFlowLogic     Category = "flowLogic"
	CategoryLookups       Category = "lookups"
	CategoryConfiguration Category = "configuration"
	CategoryOther         Category = "other"
)

// Metadata is the enrichment attached to an item for detail display.
type Metadata struct {
	Category          Category
	NormalizedPath    string
	OriginalPaths     []string
	ObjectName        string
	ActionType        string
	ChangeDescription string
}

// Item is one reported change. LeftRef/RightRef are the original
// (un-normalized) paths on each side; at least one is always set.
type Item struct {
	EntityType string
	EntityName string
	Change     ChangeType
	Severity   Severity
	RiskReason string
	LeftRef    *string
	RightRef   *string
	Patch      string
	Metadata   Metadata
}

// CategoryCounts breaks the item count down by category.
type CategoryCounts struct {
	Connections   int
	Mappings      int
	FlowLogic     int
	Lookups       int
	Configuration int
	Other         int
}

func (c *CategoryCounts) bump(cat Category) {
	switch cat {
	case CategoryConnections:
		c.Connections++
	case CategoryMappings:
		c.Mappings++
	case CategoryFlowLogic:
		c.FlowLogic++
	case CategoryLookups:
		c.Lookups++
	case CategoryConfiguration:
		c.Configuration++
	default:
		c.Other++
	}
}

// Summary aggregates one diff run. TotalMeaningful is always
// High+Medium, and High+Medium+Low+Info is always len(Items).
type Summary struct {
	High            int
	Medium          int
	Low             int
	Info            int
	TotalMeaningful int
	Categories      CategoryCounts
}

// Result is everything a diff run produces. Collisions counts
// distinct original paths that normalized onto an already-taken key
// (last write wins in the lookup; see the engine doc comment).
type Result struct {
	Items      []Item
	Summary    Summary
	Collisions int
}
