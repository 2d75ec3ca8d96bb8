// Package goquery implements parsing and DOM rewriting of export files
// using goquery selectors on top of the golang.org/x/net/html tree.
package goquery

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postport"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Ensure Parser implements postport.Parser at compile time.
var _ postport.Parser = (*Parser)(nil)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parser builds Documents from raw export markup.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw markup into a mutable Document.
func (p *Parser) Parse(raw []byte) (postport.Document, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, postport.Errorf(postport.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(decode(raw))
	if err != nil {
		return nil, postport.Errorf(postport.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// decode returns a UTF-8 reader over raw. Exports are UTF-8; anything else
// is transcoded using the charset declared in the markup.
func decode(raw []byte) io.Reader {
	r := bytes.NewReader(raw)
	if utf8.Valid(raw) {
		return r
	}
	enc, _, _ := charset.DetermineEncoding(raw, "text/html")
	return transform.NewReader(r, enc.NewDecoder())
}
