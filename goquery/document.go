package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postport"
)

// Selectors for the structural markers of the export format.
const (
	titleSelector   = "h1.p-name, h2.p-name, h3.p-name, h4.p-name, h5.p-name, h6.p-name"
	summarySelector = `section[data-field="subtitle"].p-summary`
	bodySelector    = `section[data-field="body"]`
)

// Ensure Document implements postport.Document at compile time.
var _ postport.Document = (*Document)(nil)

// Document is a parsed export file.
type Document struct {
	doc *goquery.Document
}

// Title returns the text of the first heading marked as the article name.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find(titleSelector).First().Text())
}

// Summary returns the text of the subtitle section.
func (d *Document) Summary() string {
	return strings.TrimSpace(d.doc.Find(summarySelector).First().Text())
}

// Body returns the article body container.
func (d *Document) Body() (postport.Body, error) {
	sel := d.doc.Find(bodySelector).First()
	if sel.Length() == 0 {
		return nil, postport.Errorf(postport.ENOTFOUND, "body container not found")
	}
	return &Body{sel: sel}, nil
}
