package goquery_test

import (
	"testing"

	"github.com/fwojciec/postport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed article name", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, exportHTML("  My Title \n", "", ""))

		assert.Equal(t, "My Title", doc.Title())
	})

	t.Run("uses first marked heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h2>Other</h2><h2 class="p-name">First</h2><h1 class="p-name">Second</h1>`)

		assert.Equal(t, "First", doc.Title())
	})

	t.Run("returns empty string when absent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1>Unmarked</h1><section data-field="body"></section>`)

		assert.Empty(t, doc.Title())
	})

	t.Run("does not escape text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1 class="p-name">Q&amp;A &lt;live&gt;</h1>`)

		assert.Equal(t, "Q&A <live>", doc.Title())
	})
}

func TestDocument_Summary(t *testing.T) {
	t.Parallel()

	t.Run("returns subtitle section text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, exportHTML("T", " A short <em>summary</em> ", ""))

		assert.Equal(t, "A short summary", doc.Summary())
	})

	t.Run("requires summary class marker", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<section data-field="subtitle">No class</section>`)

		assert.Empty(t, doc.Summary())
	})

	t.Run("returns empty string when absent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1 class="p-name">T</h1>`)

		assert.Empty(t, doc.Summary())
	})
}

func TestDocument_Body(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND without body container", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1 class="p-name">T</h1><section data-field="subtitle" class="p-summary">S</section>`)

		_, err := doc.Body()

		require.Error(t, err)
		assert.Equal(t, postport.ENOTFOUND, postport.ErrorCode(err))
	})

	t.Run("uses first body container", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<section data-field="body"><p>one</p></section><section data-field="body"><p>two</p></section>`)

		body, err := doc.Body()
		require.NoError(t, err)
		out, err := body.HTML()
		require.NoError(t, err)
		assert.Equal(t, "<p>one</p>", out)
	})
}
