package flow

import (
	"fmt"
	"strconv"
)

// Static lookup from BPEL-style activity tags to the common node
// vocabulary. Control constructs additionally get fan-out/fan-in
// layout in walkActivity.
var bpelKinds = map[string]struct {
	typ  NodeType
	icon string
}{
	"receive":           {TypeTrigger, "play"},
	"invoke":            {TypeAction, "call"},
	"reply":             {TypeAction, "reply"},
	"assign":            {TypeAction, "assign"},
	"throw":             {TypeError, "error"},
	"rethrow":           {TypeError, "error"},
	"exit":              {TypeEnd, "stop"},
	"wait":              {TypeAction, "wait"},
	"empty":             {TypeAction, "empty"},
	"sequence":          {TypeScope, "sequence"},
	"flow":              {TypeSwitch, "parallel"},
	"switch":            {TypeSwitch, "switch"},
	"if":                {TypeSwitch, "switch"},
	"while":             {TypeLoop, "loop"},
	"repeatUntil":       {TypeLoop, "loop"},
	"forEach":           {TypeLoop, "loop"},
	"pick":              {TypeSwitch, "pick"},
	"scope":             {TypeScope, "scope"},
	"compensate":        {TypeAction, "compensate"},
	"compensateScope":   {TypeAction, "compensate"},
	"validate":          {TypeAction, "validate"},
	"extensionActivity": {TypeAction, "extension"},
}

type bpelContext struct {
	b *builder
}

// parseBPEL is the fallback dialect: a process element containing
// BPEL-style activities. Returns nil when there is no process
// container.
func parseBPEL(root *element) *Graph {
	process := root.find("process")
	if process == nil {
		return nil
	}
	ctx := &bpelContext{b: &builder{}}
	ctx.chain(process.children, nil, centerX)

	name := process.attr("name")
	if name == "" {
		name = "Unknown"
	}
	return ctx.b.graph(Metadata{
		ProcessName: name,
		Namespace:   process.attr("targetNamespace"),
		Version:     process.attr("version"),
	})
}

// chain emits the given elements in order, wiring each activity's
// first node to the previous activity's last with a default edge.
// Returns the last node (prev if nothing was emitted).
func (c *bpelContext) chain(els []*element, prev *Node, x int) *Node {
	for _, el := range els {
		first, last := c.walkActivity(el, x)
		if first == nil {
			continue
		}
		c.b.connect(prev, first, ConnDefault, "")
		prev = last
	}
	return prev
}

// branchChain is chain without an incoming edge: it returns both the
// first and last node so the caller can wire the entry itself (used
// for labeled conditional branches).
func (c *bpelContext) branchChain(els []*element, x int) (first, last *Node) {
	for _, el := range els {
		f, l := c.walkActivity(el, x)
		if f == nil {
			continue
		}
		if first == nil {
			first = f
		} else {
			c.b.connect(last, f, ConnDefault, "")
		}
		last = l
	}
	return first, last
}

// walkActivity emits one activity (recursively for control
// constructs) and returns its entry and exit nodes. Non-activity
// elements yield (nil, nil).
func (c *bpelContext) walkActivity(el *element, x int) (first, last *Node) {
	kind, ok := bpelKinds[el.name]
	if !ok {
		return nil, nil
	}
	switch el.name {
	case "sequence":
		return c.branchChain(el.children, x)
	case "flow":
		return c.emitFlow(el, x)
	case "switch", "if":
		return c.emitBranching(el, x)
	case "while", "repeatUntil", "forEach":
		return c.emitLoop(el, x)
	case "scope":
		return c.emitScope(el, x)
	case "pick":
		return c.emitPick(el, x)
	}

	node := c.b.addNode(kind.typ, nameOr(el, defaultName(el.name, c.b.nodeSeq+1)), el.name, kind.icon, x)
	for _, k := range []string{"partnerLink", "operation", "portType", "variable", "inputVariable", "outputVariable", "faultName", "for", "until"} {
		if v := el.attr(k); v != "" {
			node.Data[k] = v
		}
	}
	return node, node
}

// emitFlow lays parallel branches side by side; a synthesized join
// node receives an edge from every branch's terminal node, and the
// vertical cursor ends up below the deepest branch.
func (c *bpelContext) emitFlow(el *element, x int) (*Node, *Node) {
	node := c.b.addNode(TypeSwitch, nameOr(el, "Flow"), el.name, "parallel", x)

	var branches []*element
	for _, ch := range el.children {
		if _, ok := bpelKinds[ch.name]; ok {
			branches = append(branches, ch)
		}
	}
	node.Data["branches"] = strconv.Itoa(len(branches))

	baseRow := c.b.row
	deepest := baseRow
	var ends []*Node
	for i, br := range branches {
		c.b.setRow(baseRow)
		bx := branchX(x, i, len(branches))
		f, l := c.walkActivity(br, bx)
		if f == nil {
			continue
		}
		c.b.connect(node, f, ConnDefault, "")
		ends = append(ends, l)
		if c.b.row > deepest {
			deepest = c.b.row
		}
	}
	c.b.setRow(deepest)

	join := c.b.addNode(TypeEnd, node.Name+" Join", "join", "merge", x)
	for _, e := range ends {
		c.b.connect(e, join, ConnDefault, "")
	}
	if len(ends) == 0 {
		c.b.connect(node, join, ConnDefault, "")
	}
	return node, join
}

type bpelBranch struct {
	label string
	body  []*element
}

// emitBranching handles both the older switch (case/otherwise) and
// the newer if (condition/elseif/else) forms. Each branch hangs off
// the construct's node by a conditional edge with a truncated label,
// and all branches converge on a synthesized merge node.
func (c *bpelContext) emitBranching(el *element, x int) (*Node, *Node) {
	node := c.b.addNode(TypeSwitch, nameOr(el, titleCase(el.name)), el.name, "switch", x)
	branches := bpelBranches(el)
	node.Data["branches"] = strconv.Itoa(len(branches))

	baseRow := c.b.row
	deepest := baseRow
	var ends []*Node
	var pending []bpelBranch // empty branches connect straight to the merge node
	for i, br := range branches {
		c.b.setRow(baseRow)
		bx := branchX(x, i, len(branches))
		f, l := c.branchChain(br.body, bx)
		if f == nil {
			pending = append(pending, br)
			continue
		}
		c.b.connect(node, f, ConnConditional, truncateLabel(br.label, 30))
		ends = append(ends, l)
		if c.b.row > deepest {
			deepest = c.b.row
		}
	}
	c.b.setRow(deepest)

	merge := c.b.addNode(TypeEnd, node.Name+" Merge", "merge", "merge", x)
	for _, e := range ends {
		c.b.connect(e, merge, ConnDefault, "")
	}
	for _, br := range pending {
		c.b.connect(node, merge, ConnConditional, truncateLabel(br.label, 30))
	}
	if len(ends) == 0 && len(pending) == 0 {
		c.b.connect(node, merge, ConnDefault, "")
	}
	return node, merge
}

func bpelBranches(el *element) []bpelBranch {
	if el.name == "switch" {
		var out []bpelBranch
		for i, cs := range el.allChildren("case") {
			label := cs.attr("condition")
			if label == "" {
				label = fmt.Sprintf("case %d", i+1)
			}
			out = append(out, bpelBranch{label: label, body: cs.children})
		}
		if o := el.firstChild("otherwise"); o != nil {
			out = append(out, bpelBranch{label: "otherwise", body: o.children})
		}
		return out
	}

	// if / elseif* / else
	var out []bpelBranch
	label := el.firstChild("condition").trimmedText()
	if label == "" {
		label = "if"
	}
	var body []*element
	for _, ch := range el.children {
		switch ch.name {
		case "condition", "elseif", "else":
		default:
			body = append(body, ch)
		}
	}
	out = append(out, bpelBranch{label: label, body: body})
	for _, ei := range el.allChildren("elseif") {
		l := ei.firstChild("condition").trimmedText()
		if l == "" {
			l = "elseif"
		}
		var b []*element
		for _, ch := range ei.children {
			if ch.name != "condition" {
				b = append(b, ch)
			}
		}
		out = append(out, bpelBranch{label: l, body: b})
	}
	if e := el.firstChild("else"); e != nil {
		out = append(out, bpelBranch{label: "else", body: e.children})
	}
	return out
}

// emitLoop chains the body below the loop node and draws the "loop"
// conditional edge from the body's last node back to the loop node.
// The resulting cycle is intentional; the graph is not acyclic.
func (c *bpelContext) emitLoop(el *element, x int) (*Node, *Node) {
	node := c.b.addNode(TypeLoop, nameOr(el, titleCase(el.name)), el.name, "loop", x)
	if cond := el.firstChild("condition").trimmedText(); cond != "" {
		node.Data["condition"] = cond
	}
	for _, k := range []string{"condition", "counterName", "parallel"} {
		if v := el.attr(k); v != "" {
			node.Data[k] = v
		}
	}

	var body []*element
	for _, ch := range el.children {
		if ch.name != "condition" {
			body = append(body, ch)
		}
	}
	f, l := c.branchChain(body, x)
	if f != nil {
		c.b.connect(node, f, ConnDefault, "")
		c.b.connect(l, node, ConnConditional, "loop")
	}
	// Successors resume from the loop node itself (loop exit).
	return node, node
}

// emitScope chains the body below the scope node; fault handlers
// attach as side error nodes off the scope, not part of the chain.
func (c *bpelContext) emitScope(el *element, x int) (*Node, *Node) {
	node := c.b.addNode(TypeScope, nameOr(el, "Scope"), el.name, "scope", x)

	handlers := el.firstChild("faultHandlers")
	var body []*element
	for _, ch := range el.children {
		if ch.name != "faultHandlers" {
			body = append(body, ch)
		}
	}
	f, l := c.branchChain(body, x)
	if f != nil {
		c.b.connect(node, f, ConnDefault, "")
	} else {
		l = node
	}

	if handlers != nil {
		node.Data["hasErrorHandler"] = "true"
		catches := append(handlers.allChildren("catch"), handlers.allChildren("catchAll")...)
		for i, h := range catches {
			name := h.attr("faultName")
			if name == "" {
				name = "Catch All"
			}
			errNode := c.b.addSideNode(TypeError, name, h.name, "error", x+errorOffset, node.Position.Y+i*rowStep)
			c.b.connect(node, errNode, ConnError, "error")
		}
	}
	return node, l
}

// emitPick lays each onMessage/onAlarm branch side by side, same
// pattern as a switch, converging on a synthesized "Pick End" node.
func (c *bpelContext) emitPick(el *element, x int) (*Node, *Node) {
	node := c.b.addNode(TypeSwitch, nameOr(el, "Pick"), el.name, "pick", x)

	branches := append(el.allChildren("onMessage"), el.allChildren("onAlarm")...)
	node.Data["branches"] = strconv.Itoa(len(branches))

	baseRow := c.b.row
	deepest := baseRow
	var ends []*Node
	for i, br := range branches {
		c.b.setRow(baseRow)
		bx := branchX(x, i, len(branches))
		label := br.attr("operation")
		if label == "" {
			if br.name == "onAlarm" {
				label = "alarm"
			} else {
				label = fmt.Sprintf("message %d", i+1)
			}
		}
		f, l := c.branchChain(br.children, bx)
		if f == nil {
			continue
		}
		c.b.connect(node, f, ConnConditional, truncateLabel(label, 30))
		ends = append(ends, l)
		if c.b.row > deepest {
			deepest = c.b.row
		}
	}
	c.b.setRow(deepest)

	end := c.b.addNode(TypeEnd, "Pick End", "merge", "merge", x)
	for _, e := range ends {
		c.b.connect(e, end, ConnDefault, "")
	}
	if len(ends) == 0 {
		c.b.connect(node, end, ConnDefault, "")
	}
	return node, end
}
