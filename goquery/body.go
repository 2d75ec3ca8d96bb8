package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postport"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewsletterPhrase marks the promotional blockquote appended by the exporter.
const NewsletterPhrase = "To stay up to date"

const (
	titleStyleSelector = "h1.graf--title, h2.graf--title, h3.graf--title, h4.graf--title, h5.graf--title, h6.graf--title"
	subheadSelector    = "h2, h3, h4, h5, h6"
)

// Ensure Body implements postport.Body at compile time.
var _ postport.Body = (*Body)(nil)

// Body is the article body container of a Document.
type Body struct {
	sel *goquery.Selection
}

func (b *Body) root() *html.Node {
	return b.sel.Get(0)
}

// Normalize rewrites the body in a fixed order; later steps rely on the
// removals made by earlier ones.
func (b *Body) Normalize() {
	// Only the first separator is dropped.
	b.sel.Find("hr").First().Remove()

	b.sel.Find(titleStyleSelector).Remove()

	// Innermost headings go first so copies made for an enclosing heading
	// already hold paragraphs.
	headings := b.sel.Find(subheadSelector).Nodes
	for i := len(headings) - 1; i >= 0; i-- {
		downgradeHeading(headings[i])
	}

	b.sel.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), NewsletterPhrase) {
			s.Remove()
		}
	})
}

// downgradeHeading replaces h with a paragraph holding deep copies of its children.
func downgradeHeading(h *html.Node) {
	if h.Parent == nil {
		return
	}
	p := &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		p.AppendChild(cloneNode(c))
	}
	h.Parent.InsertBefore(p, h)
	h.Parent.RemoveChild(h)
}

// cloneNode returns a deep copy of n detached from any tree.
func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

// Images returns the image elements currently in the body, in document order.
func (b *Body) Images() []postport.Image {
	var images []postport.Image
	b.sel.Find("img").Each(func(_ int, s *goquery.Selection) {
		images = append(images, &Image{node: s.Get(0), body: b.root()})
	})
	return images
}

// HTML renders the children of the container in order. Text keeps the
// quotes and apostrophes of the source; only markup characters and
// non-breaking spaces are escaped.
func (b *Body) HTML() (string, error) {
	var buf bytes.Buffer
	for c := b.root().FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, renderable(c, false)); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// renderable returns a copy of n whose text nodes are pre-escaped raw nodes.
// Text under literal parents such as script is copied as is.
func renderable(n *html.Node, literal bool) *html.Node {
	if n.Type == html.TextNode {
		data := n.Data
		if !literal {
			data = textEscaper.Replace(data)
		}
		return &html.Node{Type: html.RawNode, Data: data}
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      n.Attr,
	}
	childLiteral := n.Type == html.ElementNode && literalText(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(renderable(child, childLiteral))
	}
	// The parser drops one leading newline inside these elements.
	if first := n.FirstChild; first != nil && first.Type == html.TextNode && strings.HasPrefix(first.Data, "\n") {
		switch n.DataAtom {
		case atom.Pre, atom.Listing, atom.Textarea:
			c.FirstChild.Data = "\n" + c.FirstChild.Data
		}
	}
	return c
}

// literalText reports whether text children of n are serialized unescaped.
func literalText(n *html.Node) bool {
	if n.Namespace != "" {
		return false
	}
	switch n.DataAtom {
	case atom.Iframe, atom.Noembed, atom.Noframes, atom.Noscript, atom.Plaintext, atom.Script, atom.Style, atom.Xmp:
		return true
	}
	return false
}
