// Package flow reconstructs a directed graph from proprietary
// process-definition XML, so that two versions of an orchestration
// can be visualized and compared node by node. Parsing is best
// effort by contract: it never fails the surrounding diff run.
package flow

// NodeType is the common vocabulary both dialects are mapped onto.
type NodeType string

const (
	TypeTrigger NodeType = "trigger"
	TypeAction  NodeType = "action"
	TypeSwitch  NodeType = "switch"
	TypeLoop    NodeType = "loop"
	TypeScope   NodeType = "scope"
	TypeError   NodeType = "error"
	TypeEnd     NodeType = "end"
)

// Position is a synthetic layout coordinate. It is a deterministic
// placeholder good enough to draw the graph; a presentation layer is
// expected to reflow it with a proper layered layout.
type Position struct {
	X int
	Y int
}

// Node is one step of the parsed flow. ID is parser-assigned and
// stable only within a single parse; cross-version identity is by
// name, not ID.
type Node struct {
	ID           string
	Type         NodeType
	Name         string
	ActivityType string // raw dialect-specific tag (or connector label)
	Icon         string
	Position     Position
	Data         map[string]string
}

type ConnectionType string

const (
	ConnDefault     ConnectionType = "default"
	ConnConditional ConnectionType = "conditional"
	ConnError       ConnectionType = "error"
)

// Connection is a directed edge between two node IDs.
type Connection struct {
	ID     string
	Source string
	Target string
	Label  string
	Type   ConnectionType
}

// Metadata describes the process the graph came from.
type Metadata struct {
	ProcessName string
	Namespace   string
	Version     string
}

// Graph is one parsed flow. Never mutated after construction; loops
// in the process produce cycles, so it is not guaranteed acyclic.
type Graph struct {
	Nodes       []*Node
	Connections []*Connection
	Metadata    Metadata
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// ChangeStatus annotates a node for side-by-side visual diffing.
type ChangeStatus string

const (
	StatusAdded     ChangeStatus = "added"
	StatusRemoved   ChangeStatus = "removed"
	StatusModified  ChangeStatus = "modified"
	StatusUnchanged ChangeStatus = "unchanged"
)
