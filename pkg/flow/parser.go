package flow

import (
	"time"

	"github.com/go-kit/kit/log"
)

// A parse strategy turns an element tree into a graph, or returns
// nil/empty when the document is not its dialect. Strategies are
// tried in order; the first non-empty result wins.
type strategy struct {
	dialect string
	parse   func(root *element) *Graph
}

// Parser parses process-definition XML into a Graph. The zero value
// is not usable; construct with NewParser.
type Parser struct {
	logger     log.Logger
	strategies []strategy
}

func NewParser(logger log.Logger) *Parser {
	return &Parser{
		logger: logger,
		strategies: []strategy{
			{"project", parseProject},
			{"bpel", parseBPEL},
		},
	}
}

// Parse converts process XML into a graph. It never returns nil and
// never panics or propagates an error: malformed XML yields an empty
// graph with ProcessName "Parse Error", and a well-formed document
// that matches no dialect yields one with ProcessName "Unknown".
// Flow visualization is best effort and must not fail a diff run.
func (p *Parser) Parse(content string) *Graph {
	start := time.Now()

	root, err := parseXML(content)
	if err != nil {
		p.logger.Log("msg", "cannot parse process XML", "err", err)
		observeParse(start, "none")
		return emptyGraph("Parse Error")
	}
	for _, s := range p.strategies {
		if g := s.parse(root); g != nil && len(g.Nodes) > 0 {
			observeParse(start, s.dialect)
			return g
		}
	}
	observeParse(start, "none")
	return emptyGraph("Unknown")
}

func emptyGraph(processName string) *Graph {
	return &Graph{
		Nodes:       []*Node{},
		Connections: []*Connection{},
		Metadata:    Metadata{ProcessName: processName},
	}
}
