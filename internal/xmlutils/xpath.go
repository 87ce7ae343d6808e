// Package xmlutils wraps gopkg.in/xmlpath.v2 with the small surface the
// ISO 20022 readers (C4.3) need: parse an in-memory document, then walk
// it node-by-node with relative XPath queries evaluated against each
// node's own context, rather than collecting document-wide parallel
// arrays that go out of step the moment one optional element is absent
// on a single entry.
package xmlutils

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Parse parses an XML document held in memory.
func Parse(xml string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(xml))
	if err != nil {
		return nil, fmt.Errorf("parsing xml: %w", err)
	}
	return root, nil
}

// First returns the first match of path evaluated against node (absolute
// if path starts with "/", relative to node's own subtree otherwise),
// and whether any match was found.
func First(node *xmlpath.Node, path string) (string, bool) {
	p, err := xmlpath.Compile(path)
	if err != nil {
		return "", false
	}
	return p.String(node)
}

// Nodes returns every node matching path, evaluated relative to node.
func Nodes(node *xmlpath.Node, path string) ([]*xmlpath.Node, error) {
	p, err := xmlpath.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compiling xpath %q: %w", path, err)
	}
	var out []*xmlpath.Node
	iter := p.Iter(node)
	for iter.Next() {
		out = append(out, iter.Node())
	}
	return out, nil
}

// Exists reports whether path has at least one match relative to node.
func Exists(node *xmlpath.Node, path string) bool {
	p, err := xmlpath.Compile(path)
	if err != nil {
		return false
	}
	return p.Exists(node)
}
