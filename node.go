package gauge

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is one element of a gauge's DOM subtree. It wraps an *html.Node so
// gauges can live in any document built with golang.org/x/net/html, and
// delegates tree edits to goquery.
type Node struct {
	n *html.Node
}

// NewElement creates a detached HTML element.
func NewElement(tag string) *Node {
	return &Node{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// NewSVGElement creates a detached element in the SVG namespace.
func NewSVGElement(tag string) *Node {
	n := NewElement(tag)
	n.n.Namespace = "svg"
	return n
}

// WrapNode adopts an existing element, e.g. a host element parsed from a page.
// Panics if n is nil.
func WrapNode(n *html.Node) *Node {
	if n == nil {
		panic("gauge: cannot wrap nil node")
	}
	return &Node{n: n}
}

// HTMLNode returns the underlying node.
func (n *Node) HTMLNode() *html.Node {
	return n.n
}

// Selection returns a goquery view rooted at this node.
func (n *Node) Selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.n).Selection
}

// Find returns the descendants matching a CSS selector.
func (n *Node) Find(selector string) *goquery.Selection {
	return n.Selection().Find(selector)
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.n.Data
}

// Parent returns the parent element, or nil when detached.
func (n *Node) Parent() *Node {
	if n.n.Parent == nil {
		return nil
	}
	return &Node{n: n.n.Parent}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is moved.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.checkChild(child)
	n.Selection().AppendNodes(child.n)
}

// PrependChild inserts child before this node's first child.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) PrependChild(child *Node) {
	n.checkChild(child)
	n.Selection().PrependNodes(child.n)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.n.Parent == nil {
		return
	}
	n.n.Parent.RemoveChild(n.n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	n.Selection().Empty()
}

// NumChildren returns the number of element children.
func (n *Node) NumChildren() int {
	count := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

func (n *Node) checkChild(child *Node) {
	if child == nil {
		panic("gauge: cannot add nil child")
	}
	if isAncestor(child.n, n.n) {
		panic("gauge: adding child would create a cycle")
	}
}

// --- Attributes and content ---

// SetAttr sets an attribute, replacing any previous value.
func (n *Node) SetAttr(key, value string) {
	n.Selection().SetAttr(key, value)
}

// RemoveAttr deletes an attribute. No-op if it is not set.
func (n *Node) RemoveAttr(key string) {
	n.Selection().RemoveAttr(key)
}

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	return n.Selection().Attr(key)
}

// AttrOr returns an attribute value, or def when it is not set.
func (n *Node) AttrOr(key, def string) string {
	return n.Selection().AttrOr(key, def)
}

// AddClass adds the given classes.
func (n *Node) AddClass(classes ...string) {
	n.Selection().AddClass(classes...)
}

// HasClass reports whether the element has class c.
func (n *Node) HasClass(c string) bool {
	return n.Selection().HasClass(c)
}

// SetText replaces the children of the node with a single text node.
func (n *Node) SetText(text string) {
	n.RemoveChildren()
	if text == "" {
		return
	}
	n.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.Selection().Text()
}

// SetStyle sets the inline style from property/value pairs, skipping pairs
// with an empty value. The style attribute is removed when nothing is left.
func (n *Node) SetStyle(pairs ...string) {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pairs[i])
		b.WriteString(": ")
		b.WriteString(pairs[i+1])
		b.WriteByte(';')
	}
	if b.Len() == 0 {
		n.RemoveAttr("style")
		return
	}
	n.SetAttr("style", b.String())
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *html.Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// gradientDef builds the vertical background gradient shared by all variants.
func gradientDef() *Node {
	g := NewSVGElement("linearGradient")
	g.SetAttr("gradientTransform", "rotate(90)")
	for _, stop := range []struct{ offset, color string }{
		{"0%", GradientTop},
		{"100%", GradientBottom},
	} {
		s := NewSVGElement("stop")
		s.SetAttr("offset", stop.offset)
		s.SetAttr("stop-color", stop.color)
		g.AddChild(s)
	}
	return g
}
