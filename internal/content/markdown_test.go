package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/calyna/internal/content"
)

/*
TestRenderer_Render sanity-checks the Markdown pipeline: GFM constructs and
raw HTML passthrough.
*/
func TestRenderer_Render(t *testing.T) {
	renderer := content.NewRenderer()

	t.Run("basic_markdown", func(t *testing.T) {
		html, err := renderer.Render("# Heading\n\nSome *emphasis*.")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1 id=\"heading\">Heading</h1>")
		assert.Contains(t, html, "<em>emphasis</em>")
	})

	t.Run("gfm_table", func(t *testing.T) {
		html, err := renderer.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, html, "<table>")
	})

	t.Run("raw_html_passes_through", func(t *testing.T) {
		html, err := renderer.Render(`<div class="note">hi</div>`)
		require.NoError(t, err)
		assert.Contains(t, html, `<div class="note">`)
	})
}
