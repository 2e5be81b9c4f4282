package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/calyna/internal/content"
)

/*
TestParseDocument_RoundTrip checks that explicit fields survive parsing and
absent optional fields default to empty strings, never nulls.
*/
func TestParseDocument_RoundTrip(t *testing.T) {
	raw := []byte("---\ntitle: T\nhero:\n  heading: H\n---\nB")

	doc, err := content.ParseDocument(raw, content.TypePage, content.LangEnglish, "about")
	require.NoError(t, err)

	assert.Equal(t, "T", doc.Title)
	assert.Equal(t, "H", doc.Hero.Heading)
	assert.Equal(t, "", doc.Hero.Sub)
	assert.Equal(t, "", doc.Hero.Image)
	assert.Equal(t, "B", doc.Body)
	assert.Equal(t, "", doc.Description)
	assert.Equal(t, "", doc.SEO.Title)
}

/*
TestParseDocument_SlugPrecedence checks that a non-empty frontmatter slug
overrides the filename-derived slug, and whitespace-only slugs do not.
*/
func TestParseDocument_SlugPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fileSlug string
		want     string
	}{
		{"frontmatter_wins", "---\nslug: services\n---\nbody", "--1", "services"},
		{"frontmatter_trimmed", "---\nslug: '  services  '\n---\nbody", "--1", "services"},
		{"empty_falls_back_to_filename", "---\nslug: ''\n---\nbody", "services-", "services-"},
		{"missing_falls_back_to_filename", "---\ntitle: T\n---\nbody", "services", "services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := content.ParseDocument([]byte(tt.raw), content.TypePage, content.LangEnglish, tt.fileSlug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Slug)
			assert.Equal(t, tt.fileSlug, doc.FileSlug)
		})
	}
}

/*
TestParseDocument_Defaults checks the title and hero-heading fallback chain:
title defaults to the canonical slug, the hero heading defaults to the title.
*/
func TestParseDocument_Defaults(t *testing.T) {
	doc, err := content.ParseDocument([]byte("---\ndescription: d\n---\nbody"),
		content.TypePage, content.LangUkrainian, "work-with-me")
	require.NoError(t, err)

	assert.Equal(t, "work-with-me", doc.Title)
	assert.Equal(t, "work-with-me", doc.Hero.Heading)

	doc, err = content.ParseDocument([]byte("---\ntitle: Services\n---\nbody"),
		content.TypePage, content.LangUkrainian, "services")
	require.NoError(t, err)
	assert.Equal(t, "Services", doc.Hero.Heading)
}

/*
TestParseDocument_NoFrontmatter checks that a file without a metadata fence
is a valid body-only document.
*/
func TestParseDocument_NoFrontmatter(t *testing.T) {
	doc, err := content.ParseDocument([]byte("just some markdown"),
		content.TypePage, content.LangEnglish, "plain")
	require.NoError(t, err)

	assert.Equal(t, "plain", doc.Slug)
	assert.Equal(t, "just some markdown", doc.Body)
}

/*
TestParseDocument_Invalid checks that broken metadata fails parsing instead
of producing a half-filled document.
*/
func TestParseDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unterminated_fence", "---\ntitle: T\nno closing fence"},
		{"bad_yaml", "---\ntitle: [unbalanced\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.ParseDocument([]byte(tt.raw), content.TypePost, content.LangEnglish, "x")
			require.Error(t, err)
		})
	}
}

/*
TestParseDocument_DateForms checks that both native YAML dates and ISO
strings normalize to YYYY-MM-DD, and garbage is treated as absent.
*/
func TestParseDocument_DateForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare_yaml_date", "---\ndate: 2024-06-01\n---\nb", "2024-06-01"},
		{"quoted_date", "---\ndate: '2024-06-01'\n---\nb", "2024-06-01"},
		{"rfc3339", "---\ndate: '2024-06-01T10:30:00Z'\n---\nb", "2024-06-01"},
		{"garbage", "---\ndate: next tuesday\n---\nb", ""},
		{"absent", "---\ntitle: T\n---\nb", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := content.ParseDocument([]byte(tt.raw), content.TypePost, content.LangEnglish, "p")
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Date)
		})
	}
}

/*
TestNormalizeDate exercises the accepted layouts directly.
*/
func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-02", "2024-01-02"},
		{"2024-01-02T15:04:05Z", "2024-01-02"},
		{"2024-01-02T15:04:05", "2024-01-02"},
		{"2024-01-02 15:04:05", "2024-01-02"},
		{"  2024-01-02  ", "2024-01-02"},
		{"01/02/2024", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, content.NormalizeDate(tt.in), "input %q", tt.in)
	}
}
