package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postport"
	"golang.org/x/net/html"
)

// Ensure Image implements postport.Image at compile time.
var _ postport.Image = (*Image)(nil)

// Image is an img element inside a Body.
type Image struct {
	node *html.Node
	body *html.Node
}

// Source returns src, falling back to the deferred-load data-src attribute.
func (img *Image) Source() string {
	if src := strings.TrimSpace(attr(img.node, "src")); src != "" {
		return src
	}
	return strings.TrimSpace(attr(img.node, "data-src"))
}

// Alt returns the trimmed alt attribute.
func (img *Image) Alt() string {
	return strings.TrimSpace(attr(img.node, "alt"))
}

// Attached reports whether the image is still inside the body container.
func (img *Image) Attached() bool {
	for n := img.node.Parent; n != nil; n = n.Parent {
		if n == img.body {
			return true
		}
	}
	return false
}

// RemoveLead removes the image from the body. A figure wrapper, or any
// parent with a class, goes with it. The container itself is never removed.
func (img *Image) RemoveLead() {
	parent := img.node.Parent
	if parent == nil {
		return
	}
	if parent != img.body && (isFigure(parent) || strings.TrimSpace(attr(parent, "class")) != "") {
		if parent.Parent != nil {
			parent.Parent.RemoveChild(parent)
		}
		return
	}
	parent.RemoveChild(img.node)
}

// TakeCaption removes the figcaption of the enclosing figure and returns its text.
func (img *Image) TakeCaption() string {
	parent := img.node.Parent
	if parent == nil || !isFigure(parent) {
		return ""
	}
	caption := goquery.NewDocumentFromNode(parent).Find("figcaption").First()
	if caption.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(caption.Text())
	caption.Remove()
	return text
}

// Replace substitutes the image with a placeholder element at the same position.
func (img *Image) Replace(p postport.Placeholder) {
	parent := img.node.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(PlaceholderNode(p), img.node)
	parent.RemoveChild(img.node)
}

// PlaceholderNode builds the reference element for an inline asset.
// The caption is stored as escaped markup, so it is escaped here and
// escaped once more when the attribute is rendered.
func PlaceholderNode(p postport.Placeholder) *html.Node {
	align := p.Align
	if align == "" {
		align = postport.DefaultAlign
	}
	viewMode := p.ViewMode
	if viewMode == "" {
		viewMode = postport.DefaultViewMode
	}

	attrs := []html.Attribute{
		{Key: "data-entity-type", Val: postport.PlaceholderEntityType},
		{Key: "data-entity-uuid", Val: p.AssetID},
		{Key: "data-align", Val: align},
		{Key: "data-view-mode", Val: viewMode},
	}
	if p.Caption != "" {
		caption := html.EscapeString(strings.ToValidUTF8(p.Caption, "\uFFFD"))
		attrs = append(attrs, html.Attribute{Key: "data-caption", Val: caption})
	}

	return &html.Node{
		Type: html.ElementNode,
		Data: postport.PlaceholderTag,
		Attr: attrs,
	}
}

func isFigure(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "figure"
}

// attr returns the value of the named attribute, or "" if absent.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}
