package flow

import (
	"sort"
	"strings"
)

// Compare annotates two independently-parsed graphs with per-node
// change status, keyed by node ID on each side. Matching is by
// case-insensitive name only: flow nodes are human-named and names
// are assumed stable across edits. A rename therefore shows up as a
// removed+added pair, and two same-named nodes with different roles
// are compared as one pair — a known limitation, kept deliberately.
func Compare(left, right *Graph) (leftChanges, rightChanges map[string]ChangeStatus) {
	leftByName := nodesByName(left)
	rightByName := nodesByName(right)

	leftChanges = make(map[string]ChangeStatus, len(left.Nodes))
	for _, n := range left.Nodes {
		match, ok := rightByName[strings.ToLower(n.Name)]
		switch {
		case !ok:
			leftChanges[n.ID] = StatusRemoved
		case nodeDiffers(n, match):
			leftChanges[n.ID] = StatusModified
		default:
			leftChanges[n.ID] = StatusUnchanged
		}
	}

	rightChanges = make(map[string]ChangeStatus, len(right.Nodes))
	for _, n := range right.Nodes {
		match, ok := leftByName[strings.ToLower(n.Name)]
		switch {
		case !ok:
			rightChanges[n.ID] = StatusAdded
		case nodeDiffers(match, n):
			rightChanges[n.ID] = StatusModified
		default:
			rightChanges[n.ID] = StatusUnchanged
		}
	}
	return leftChanges, rightChanges
}

func nodesByName(g *Graph) map[string]*Node {
	byName := make(map[string]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byName[strings.ToLower(n.Name)] = n
	}
	return byName
}

func nodeDiffers(a, b *Node) bool {
	return a.ActivityType != b.ActivityType ||
		a.Type != b.Type ||
		serializeData(a.Data) != serializeData(b.Data)
}

func serializeData(data map[string]string) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(data[k])
		b.WriteByte(';')
	}
	return b.String()
}
