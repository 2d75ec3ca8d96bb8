package postport

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an imported record body into Markdown.
	// Placeholder references are kept as raw HTML.
	Convert(html string) (string, error)
}
