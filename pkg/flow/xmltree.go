package flow

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// element is a generic tagged tree: local name, attributes, ordered
// children and accumulated text. Both dialect parsers work over this
// rather than dialect-specific structs, since the interesting
// vocabulary differs per export version and unknown tags must be
// traversable anyway.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     string
}

// parseXML tokenizes a document into an element tree. Namespace
// prefixes are discarded; the dialects are matched on local names.
func parseXML(content string) (*element, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var root *element
	var stack []*element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: map[string]string{}}
			for _, a := range t.Attr {
				key := a.Name.Local
				if a.Name.Space == "xml" {
					key = "xml:" + a.Name.Local
				}
				el.attrs[key] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					// Stop at the first document element.
					return root, nil
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no document element")
	}
	return root, nil
}

func (e *element) attr(name string) string {
	if e == nil {
		return ""
	}
	return e.attrs[name]
}

// firstChild returns the first direct child with the given local
// name, or nil.
func (e *element) firstChild(name string) *element {
	if e == nil {
		return nil
	}
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// allChildren returns every direct child with the given local name.
func (e *element) allChildren(name string) []*element {
	if e == nil {
		return nil
	}
	var out []*element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// find returns the first descendant (depth first, document order)
// with the given local name; the receiver itself is a candidate.
func (e *element) find(name string) *element {
	if e == nil {
		return nil
	}
	if e.name == name {
		return e
	}
	for _, c := range e.children {
		if m := c.find(name); m != nil {
			return m
		}
	}
	return nil
}

// trimmedText is the element's own text content with surrounding
// whitespace removed.
func (e *element) trimmedText() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.text)
}
