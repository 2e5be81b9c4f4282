package content

// Lang identifies one of the site's supported languages.
//
// The set is fixed: language is a routing path segment and every document
// filename carries one of these codes as its suffix.
type Lang string

const (
	LangEnglish   Lang = "en"
	LangUkrainian Lang = "ukr"
	LangRussian   Lang = "ru"
)

// Languages returns the supported language codes in routing order.
func Languages() []Lang {
	return []Lang{LangEnglish, LangUkrainian, LangRussian}
}

// Supported reports whether l is one of the fixed language codes.
func (l Lang) Supported() bool {
	switch l {
	case LangEnglish, LangUkrainian, LangRussian:
		return true
	}
	return false
}

// Type distinguishes the two document kinds: slug-addressed pages and
// dated, listable posts.
type Type string

const (
	TypePage Type = "page"
	TypePost Type = "post"
)

// Dir returns the content subdirectory holding documents of this type.
func (t Type) Dir() string {
	if t == TypePost {
		return "posts"
	}
	return "pages"
}

// Hero holds the banner block fields of a page document.
type Hero struct {
	Heading string `json:"heading"`
	Sub     string `json:"sub"`
	Image   string `json:"image,omitempty"`
}

// SEO holds optional search-engine metadata of a page document.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Canonical   string `json:"canonical,omitempty"`
	Noindex     bool   `json:"noindex,omitempty"`
}

// Document is one language-specific content file, parsed and normalized.
//
// Identity is the (Type, Lang, Slug) triple. Slug is the canonical slug:
// the trimmed frontmatter slug when present, otherwise the filename with
// the language suffix stripped. FileSlug keeps the filename-derived value
// because legacy files may carry a different canonical slug.
type Document struct {
	Type     Type   `json:"-"`
	Lang     Lang   `json:"lang"`
	Slug     string `json:"slug"`
	FileSlug string `json:"-"`

	Title       string `json:"title"`
	Hero        Hero   `json:"hero"`
	SEO         SEO    `json:"seo"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body"`
}

// Page is the normalized view of a page document handed to presentation.
type Page struct {
	Slug     string `json:"slug"`
	Lang     Lang   `json:"lang"`
	Title    string `json:"title"`
	Hero     Hero   `json:"hero"`
	SEO      SEO    `json:"seo"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}

// Post is the normalized view of a single post document.
type Post struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Body        string `json:"body"`
	BodyHTML    string `json:"body_html"`
}

// PostSummary is the listing projection of a post: metadata only, no body.
type PostSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// StaticParam is one prebuildable (language, slug) route combination.
type StaticParam struct {
	Lang Lang   `json:"lang"`
	Slug string `json:"slug"`
}

// PrebuildSlugs are the page slugs the frontend prebuilds at deploy time.
// Any other slug is resolved dynamically.
var PrebuildSlugs = []string{"services", "work-with-me"}

// StaticParams enumerates languages × prebuildable page slugs.
func StaticParams() []StaticParam {
	out := make([]StaticParam, 0, len(Languages())*len(PrebuildSlugs))
	for _, lang := range Languages() {
		for _, slug := range PrebuildSlugs {
			out = append(out, StaticParam{Lang: lang, Slug: slug})
		}
	}
	return out
}
