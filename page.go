package gauge

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const pageSkeleton = `<!DOCTYPE html><html><head><meta charset="utf-8"><title></title></head><body></body></html>`

// Page is a host HTML document that gauges can be appended to and that can
// be serialised as a whole.
type Page struct {
	doc  *goquery.Document
	head *Node
	body *Node
}

// NewPage creates an empty document with the given title.
func NewPage(title string) *Page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageSkeleton))
	if err != nil {
		// The skeleton is a constant; parsing it cannot fail.
		panic(fmt.Sprintf("gauge: parse page skeleton: %v", err))
	}
	p := &Page{
		doc:  doc,
		head: WrapNode(doc.Find("head").Get(0)),
		body: WrapNode(doc.Find("body").Get(0)),
	}
	WrapNode(doc.Find("title").Get(0)).SetText(title)
	return p
}

// Head returns the head element.
func (p *Page) Head() *Node {
	return p.head
}

// Body returns the body element, the usual gauge host.
func (p *Page) Body() *Node {
	return p.body
}

// AddStylesheet links an external stylesheet from the head.
func (p *Page) AddStylesheet(href string) {
	link := NewElement("link")
	link.SetAttr("rel", "stylesheet")
	link.SetAttr("href", href)
	p.head.AddChild(link)
}

// Find returns the elements of the document matching a CSS selector.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// Render writes the whole document as HTML.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc.Get(0))
}

// RenderNode writes one subtree, e.g. a gauge's svg element, as markup.
func RenderNode(w io.Writer, n *Node) error {
	return html.Render(w, n.HTMLNode())
}

// SVG returns the svg element of a gauge.
func SVG(g Gauge) *Node {
	sel := g.Root().Find("svg")
	if sel.Length() == 0 {
		return nil
	}
	return WrapNode(sel.Get(0))
}
