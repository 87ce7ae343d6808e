// Package xmlbuilder wraps github.com/beevik/etree with the small
// streaming element-builder surface the ISO 20022 generators (C5.2) need:
// open/attr/text/close with a balanced-nesting stack, so a generator reads
// as a straight-line walk of the document shape instead of juggling
// *etree.Element return values at every call site.
package xmlbuilder

import (
	"io"

	"github.com/beevik/etree"
)

// Builder accumulates an XML document one element at a time.
type Builder struct {
	doc   *etree.Document
	stack []*etree.Element
}

// New creates a Builder with a standard XML declaration.
func New() *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return &Builder{doc: doc}
}

// Root opens the document's root element with the given default namespace.
func (b *Builder) Root(tag, namespace string) *Builder {
	root := b.doc.CreateElement(tag)
	if namespace != "" {
		root.CreateAttr("xmlns", namespace)
	}
	b.stack = append(b.stack, root)
	return b
}

// Open creates a child of the current top-of-stack element and pushes it,
// becoming the new current element until the matching Close.
func (b *Builder) Open(tag string) *Builder {
	parent := b.current()
	child := parent.CreateElement(tag)
	b.stack = append(b.stack, child)
	return b
}

// Attr sets an attribute on the current element.
func (b *Builder) Attr(key, value string) *Builder {
	b.current().CreateAttr(key, value)
	return b
}

// Text sets the current element's character content.
func (b *Builder) Text(value string) *Builder {
	b.current().SetText(value)
	return b
}

// Elem is shorthand for Open(tag).Text(value).Close(), the common case of
// a leaf element carrying only character data.
func (b *Builder) Elem(tag, value string) *Builder {
	return b.Open(tag).Text(value).Close()
}

// Close pops the current element, returning to its parent.
func (b *Builder) Close() *Builder {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

func (b *Builder) current() *etree.Element {
	if len(b.stack) == 0 {
		panic("xmlbuilder: no open element; call Root first")
	}
	return b.stack[len(b.stack)-1]
}

// WriteTo writes the indented document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.doc.Indent(2)
	return b.doc.WriteTo(w)
}

// String renders the indented document as a string.
func (b *Builder) String() (string, error) {
	b.doc.Indent(2)
	return b.doc.WriteToString()
}
