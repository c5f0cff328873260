// Package ofx assembles and serializes the OFX statement document.
package ofx

import "strings"

const indentUnit = "    "

// Element is a node of the OFX document tree: a leaf carrying text, or a
// container of child elements.
type Element struct {
	Name     string
	Text     string
	Children []*Element
}

// NewElement returns an empty container element.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Ele appends a child container and returns the child for further nesting.
func (e *Element) Ele(name string) *Element {
	child := &Element{Name: name}
	e.Children = append(e.Children, child)
	return child
}

// Txt appends a leaf child and returns the receiver so sibling leaves chain.
func (e *Element) Txt(name, text string) *Element {
	e.Children = append(e.Children, &Element{Name: name, Text: text})
	return e
}

// Render serializes the tree depth first with four-space indentation.
// With closeTags false, leaf elements stay unclosed in classic SGML style
// (<TAG>value); containers always get their closing tag.
func Render(root *Element, closeTags bool) string {
	var b strings.Builder
	renderElement(&b, root, 0, closeTags)
	return strings.TrimSuffix(b.String(), "\n")
}

func renderElement(b *strings.Builder, e *Element, depth int, closeTags bool) {
	indent := strings.Repeat(indentUnit, depth)
	if len(e.Children) == 0 {
		b.WriteString(indent)
		b.WriteString("<" + e.Name + ">")
		b.WriteString(escapeText(e.Text))
		if closeTags {
			b.WriteString("</" + e.Name + ">")
		}
		b.WriteString("\n")
		return
	}

	b.WriteString(indent + "<" + e.Name + ">\n")
	for _, child := range e.Children {
		renderElement(b, child, depth+1, closeTags)
	}
	b.WriteString(indent + "</" + e.Name + ">\n")
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeText(text string) string {
	return textEscaper.Replace(text)
}
