package flow

import (
	"fmt"
)

// Layout constants for the synthetic vertical layout. Branches fan
// out horizontally around their parent's x; error handlers sit off
// to the right of the node they guard.
const (
	rowStep     = 120
	branchWidth = 250
	errorOffset = 300
	centerX     = 400
)

// builder is the mutable context threaded through the recursive
// graph construction: id counters and the vertical layout cursor.
type builder struct {
	nodes   []*Node
	conns   []*Connection
	nodeSeq int
	edgeSeq int
	row     int
}

func (b *builder) nextNodeID() string {
	b.nodeSeq++
	return fmt.Sprintf("node_%d", b.nodeSeq)
}

func (b *builder) nextEdgeID() string {
	b.edgeSeq++
	return fmt.Sprintf("edge_%d", b.edgeSeq)
}

func (b *builder) advanceRow() {
	b.row++
}

func (b *builder) currentY() int {
	return b.row * rowStep
}

// setRow moves the vertical cursor, used when multi-branch constructs
// need to resume below their deepest branch.
func (b *builder) setRow(row int) {
	b.row = row
}

// addNode places a node at the current row and advances the cursor.
func (b *builder) addNode(typ NodeType, name, activityType, icon string, x int) *Node {
	n := &Node{
		ID:           b.nextNodeID(),
		Type:         typ,
		Name:         name,
		ActivityType: activityType,
		Icon:         icon,
		Position:     Position{X: x, Y: b.currentY()},
		Data:         map[string]string{},
	}
	b.nodes = append(b.nodes, n)
	b.advanceRow()
	return n
}

// addSideNode places a node without advancing the cursor; used for
// error handlers sitting beside the main chain.
func (b *builder) addSideNode(typ NodeType, name, activityType, icon string, x, y int) *Node {
	n := &Node{
		ID:           b.nextNodeID(),
		Type:         typ,
		Name:         name,
		ActivityType: activityType,
		Icon:         icon,
		Position:     Position{X: x, Y: y},
		Data:         map[string]string{},
	}
	b.nodes = append(b.nodes, n)
	return n
}

func (b *builder) connect(source, target *Node, typ ConnectionType, label string) {
	if source == nil || target == nil {
		return
	}
	b.conns = append(b.conns, &Connection{
		ID:     b.nextEdgeID(),
		Source: source.ID,
		Target: target.ID,
		Label:  label,
		Type:   typ,
	})
}

func (b *builder) graph(meta Metadata) *Graph {
	return &Graph{Nodes: b.nodes, Connections: b.conns, Metadata: meta}
}

// branchX centers n branches around a parent x position.
func branchX(parentX, index, total int) int {
	if total <= 1 {
		return parentX
	}
	width := (total - 1) * branchWidth
	return parentX + index*branchWidth - width/2
}

func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
