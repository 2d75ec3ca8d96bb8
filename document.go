package postport

// Placeholder markup recognized by the rendering layer.
const (
	PlaceholderTag        = "drupal-media"
	PlaceholderEntityType = "media"

	DefaultAlign    = "center"
	DefaultViewMode = "wide"
)

// Placeholder describes the reference element that replaces an inline image.
type Placeholder struct {
	AssetID  string
	Align    string
	ViewMode string
	Caption  string
}

// Parser parses raw export markup.
type Parser interface {
	// Parse builds a mutable document from raw bytes. Malformed markup is
	// tolerated; only empty input is rejected with EINVALID.
	Parse(raw []byte) (Document, error)
}

// Document is a parsed export file.
type Document interface {
	// Title returns the trimmed article name, or "" if absent.
	Title() string

	// Summary returns the trimmed subtitle, or "" if absent.
	Summary() string

	// Body returns the article body container.
	// Returns ENOTFOUND if the document has none.
	Body() (Body, error)
}

// Body is the container holding the article content.
type Body interface {
	// Normalize removes separators, decorative titles and newsletter blocks
	// and downgrades sub-headings to paragraphs.
	Normalize()

	// Images returns the image elements in document order.
	Images() []Image

	// HTML serializes the children of the container.
	HTML() (string, error)
}

// Image is an image element inside a Body.
type Image interface {
	// Source returns the src attribute, falling back to data-src.
	Source() string

	// Alt returns the trimmed alt attribute.
	Alt() string

	// Attached reports whether the image is still part of the body.
	Attached() bool

	// RemoveLead removes the image, together with its wrapper when the
	// wrapper is a figure or carries a class.
	RemoveLead()

	// TakeCaption removes the caption of the enclosing figure and returns
	// its trimmed text. Returns "" if there is none.
	TakeCaption() string

	// Replace substitutes the image with a placeholder element in place.
	Replace(p Placeholder)
}
