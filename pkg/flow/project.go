package flow

import (
	"fmt"
	"strconv"
	"strings"
)

// The orchestration vocabulary of the "project" dialect. Anything
// else inside the flow container is configuration noise the walk
// steps over.
var projectTags = map[string]bool{
	"receive":              true,
	"transformer":          true,
	"invoke":               true,
	"stageFile":            true,
	"try":                  true,
	"switch":               true,
	"forEach":              true,
	"assign":               true,
	"activityStreamLogger": true,
	"stop":                 true,
}

// connector is a declared external system ("application"): the
// human-facing name and adapter identity used to enrich receive and
// invoke nodes.
type connector struct {
	name        string
	role        string
	adapterType string
	adapterCode string
}

// subProcessor is a declared named sub-behavior of the project.
type subProcessor struct {
	name string
	typ  string
	role string
}

type projectContext struct {
	b     *builder
	apps  map[string]connector
	procs map[string]subProcessor
}

// parseProject handles the "project" dialect: a project container
// declaring applications and processors, plus an ordered flow of
// orchestration elements. Returns nil when the document has no
// project/flow container.
func parseProject(root *element) *Graph {
	project := root.find("project")
	if project == nil {
		return nil
	}
	flowEl := project.find("flow")
	if flowEl == nil {
		return nil
	}

	ctx := &projectContext{
		b:     &builder{},
		apps:  map[string]connector{},
		procs: map[string]subProcessor{},
	}
	for _, a := range project.firstChild("applications").allChildren("application") {
		id := a.attr("id")
		if id == "" {
			id = a.attr("name")
		}
		ctx.apps[id] = connector{
			name:        a.attr("name"),
			role:        a.attr("role"),
			adapterType: a.attr("adapter"),
			adapterCode: a.attr("code"),
		}
	}
	for _, p := range project.firstChild("processors").allChildren("processor") {
		id := p.attr("id")
		if id == "" {
			id = p.attr("name")
		}
		ctx.procs[id] = subProcessor{
			name: p.attr("name"),
			typ:  p.attr("type"),
			role: p.attr("role"),
		}
	}

	ctx.walkSequence(flowEl.children, nil, centerX)

	name := project.attr("name")
	if name == "" {
		name = "Unknown"
	}
	return ctx.b.graph(Metadata{
		ProcessName: name,
		Namespace:   project.attr("targetNamespace"),
		Version:     project.attr("version"),
	})
}

// walkSequence emits nodes for the recognized children in document
// order, chaining each to its predecessor, and returns the last node
// of the chain (prev if nothing was emitted).
func (c *projectContext) walkSequence(children []*element, prev *Node, x int) *Node {
	last := prev
	for _, ch := range children {
		if !projectTags[ch.name] {
			continue
		}
		last = c.emit(ch, last, x)
	}
	return last
}

func (c *projectContext) emit(el *element, prev *Node, x int) *Node {
	switch el.name {
	case "try":
		return c.emitTry(el, prev, x)
	case "switch":
		return c.emitSwitch(el, prev, x)
	case "forEach":
		return c.emitForEach(el, prev, x)
	}
	node := c.leafNode(el, x)
	c.b.connect(prev, node, ConnDefault, "")
	return node
}

func (c *projectContext) leafNode(el *element, x int) *Node {
	typ, icon := projectNodeKind(el.name)
	node := c.b.addNode(typ, nameOr(el, defaultName(el.name, c.b.nodeSeq+1)), el.name, icon, x)
	c.enrich(node, el)
	return node
}

func projectNodeKind(tag string) (NodeType, string) {
	switch tag {
	case "receive":
		return TypeTrigger, "play"
	case "invoke":
		return TypeAction, "call"
	case "transformer":
		return TypeAction, "transform"
	case "stageFile":
		return TypeAction, "file"
	case "assign":
		return TypeAction, "assign"
	case "activityStreamLogger":
		return TypeAction, "log"
	case "stop":
		return TypeEnd, "stop"
	}
	return TypeAction, "step"
}

// enrich resolves the element's declared reference against the
// project's applications and processors. A resolved connector
// overrides the display name and activity-type label with the
// connector's human name and adapter type.
func (c *projectContext) enrich(node *Node, el *element) {
	for _, k := range []string{"operation", "endpoint", "variable", "variables", "xsl"} {
		if v := el.attr(k); v != "" {
			node.Data[k] = v
		}
	}
	ref := el.attr("ref")
	if ref == "" {
		ref = el.attr("applicationRef")
	}
	if app, ok := c.apps[ref]; ok {
		if app.name != "" {
			node.Name = app.name
		}
		if app.adapterType != "" {
			node.ActivityType = app.adapterType
		}
		node.Data["connection"] = app.name
		node.Data["adapterType"] = app.adapterType
		if app.adapterCode != "" {
			node.Data["adapterCode"] = app.adapterCode
		}
		if app.role != "" {
			node.Data["role"] = app.role
		}
		return
	}
	pref := el.attr("processorRef")
	if pref == "" {
		pref = ref
	}
	if proc, ok := c.procs[pref]; ok {
		if proc.name != "" {
			node.Name = proc.name
		}
		if proc.typ != "" {
			node.ActivityType = proc.typ
		}
		if proc.role != "" {
			node.Data["role"] = proc.role
		}
	}
}

// emitTry lays out a try container: body in the main chain, the
// catchAll (if any) as a side error node off the container's start,
// and a synthesized end node closing the container.
func (c *projectContext) emitTry(el *element, prev *Node, x int) *Node {
	node := c.b.addNode(TypeScope, nameOr(el, "Try"), el.name, "scope", x)
	c.b.connect(prev, node, ConnDefault, "")

	catch := el.firstChild("catchAll")
	var body []*element
	for _, ch := range el.children {
		if ch.name != "catchAll" {
			body = append(body, ch)
		}
	}
	node.Data["children"] = strconv.Itoa(countTags(body))
	if catch != nil {
		node.Data["hasErrorHandler"] = "true"
	}

	last := c.walkSequence(body, node, x)
	if catch != nil {
		errNode := c.b.addSideNode(TypeError, nameOr(catch, "Catch All"), catch.name, "error", x+errorOffset, node.Position.Y)
		c.b.connect(node, errNode, ConnError, "error")
	}
	end := c.b.addNode(TypeEnd, node.Name+" End", "end", "end", x)
	c.b.connect(last, end, ConnDefault, "")
	return end
}

// emitSwitch lays the cases out side by side; every branch's last
// node converges on a synthesized end node.
func (c *projectContext) emitSwitch(el *element, prev *Node, x int) *Node {
	node := c.b.addNode(TypeSwitch, nameOr(el, "Switch"), el.name, "switch", x)
	c.b.connect(prev, node, ConnDefault, "")

	branches := el.allChildren("case")
	if o := el.firstChild("otherwise"); o != nil {
		branches = append(branches, o)
	}
	node.Data["branches"] = strconv.Itoa(len(branches))

	baseRow := c.b.row
	deepest := baseRow
	var ends []*Node
	for i, br := range branches {
		c.b.setRow(baseRow)
		bx := branchX(x, i, len(branches))
		label := br.attr("condition")
		if label == "" {
			if br.name == "otherwise" {
				label = "otherwise"
			} else {
				label = fmt.Sprintf("case %d", i+1)
			}
		}
		branchNode := c.b.addNode(TypeAction, nameOr(br, titleCase(br.name)), br.name, "branch", bx)
		c.b.connect(node, branchNode, ConnConditional, truncateLabel(label, 30))
		ends = append(ends, c.walkSequence(br.children, branchNode, bx))
		if c.b.row > deepest {
			deepest = c.b.row
		}
	}
	c.b.setRow(deepest)

	end := c.b.addNode(TypeEnd, node.Name+" End", "end", "end", x)
	for _, e := range ends {
		c.b.connect(e, end, ConnDefault, "")
	}
	if len(ends) == 0 {
		c.b.connect(node, end, ConnDefault, "")
	}
	return end
}

func (c *projectContext) emitForEach(el *element, prev *Node, x int) *Node {
	node := c.b.addNode(TypeLoop, nameOr(el, "For Each"), el.name, "loop", x)
	c.b.connect(prev, node, ConnDefault, "")
	for _, k := range []string{"over", "iterator", "element"} {
		if v := el.attr(k); v != "" {
			node.Data[k] = v
		}
	}
	node.Data["children"] = strconv.Itoa(countTags(el.children))

	last := c.walkSequence(el.children, node, x)
	end := c.b.addNode(TypeEnd, node.Name+" End", "end", "end", x)
	c.b.connect(last, end, ConnDefault, "")
	return end
}

func nameOr(el *element, fallback string) string {
	if n := el.attr("name"); n != "" {
		return n
	}
	return fallback
}

func defaultName(tag string, seq int) string {
	return fmt.Sprintf("%s %d", titleCase(tag), seq)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func countTags(children []*element) int {
	n := 0
	for _, ch := range children {
		if projectTags[ch.name] {
			n++
		}
	}
	return n
}
