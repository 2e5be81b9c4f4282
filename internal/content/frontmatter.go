package content

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFrontmatter marks a document whose metadata block opened but
// never closed, or failed to decode as YAML. Scan loops treat it the same
// as any other parse failure: skip the file.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")

const frontmatterFence = "---"

// Date is a calendar date normalized to YYYY-MM-DD during YAML decoding.
//
// Authors write either a bare YAML date (date: 2024-06-01) or a quoted ISO
// string; both arrive here as scalar text. Anything unparsable decodes to
// the empty string and is treated as "no date" — a bad date never fails
// the whole document.
type Date string

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*d = ""
		return nil
	}
	*d = Date(NormalizeDate(value.Value))
	return nil
}

// NormalizeDate reduces a date string to YYYY-MM-DD form, or "" when the
// value is not a date in any accepted layout. Keeping every stored date in
// the same form is what makes the listing sort's string comparison a
// correct calendar ordering.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{
		time.DateOnly,
		time.RFC3339,
		"2006-01-02T15:04:05",
		time.DateTime,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return ""
}

// metadata is the raw frontmatter schema. Every field is optional;
// defaults are applied afterwards in ParseDocument so that absent values
// surface as empty strings, never as nulls.
type metadata struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Date        Date   `yaml:"date"`
	Description string `yaml:"description"`

	Hero struct {
		Heading string `yaml:"heading"`
		Sub     string `yaml:"sub"`
		Image   string `yaml:"image"`
	} `yaml:"hero"`

	SEO struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Canonical   string `yaml:"canonical"`
		Noindex     bool   `yaml:"noindex"`
	} `yaml:"seo"`
}

// splitFrontmatter separates the fenced metadata block from the body.
//
// A document without a leading "---" fence has no metadata at all: the
// whole input is body, which is valid. A fence that opens but never
// closes is a broken file.
func splitFrontmatter(raw []byte) (meta, body []byte, err error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	open := frontmatterFence + "\n"
	if !bytes.HasPrefix(norm, []byte(open)) {
		return nil, norm, nil
	}
	rest := norm[len(open):]

	closeMid := "\n" + frontmatterFence + "\n"
	if parts := bytes.SplitN(rest, []byte(closeMid), 2); len(parts) == 2 {
		return parts[0], parts[1], nil
	}
	// Closing fence at EOF means an empty body.
	if trimmed := bytes.TrimRight(rest, "\n"); bytes.HasSuffix(trimmed, []byte("\n"+frontmatterFence)) {
		return trimmed[:len(trimmed)-len("\n"+frontmatterFence)], nil, nil
	}
	// "---\n---": empty metadata, empty body.
	if bytes.Equal(bytes.TrimSpace(rest), []byte(frontmatterFence)) {
		return nil, nil, nil
	}
	return nil, nil, ErrInvalidFrontmatter
}

// ParseDocument parses one raw document into a normalized [Document].
//
// fileSlug is the filename with the language suffix stripped; it is the
// canonical slug unless the frontmatter carries a non-empty slug of its
// own. Missing optional fields default per the original site's rules:
// title falls back to the canonical slug, the hero heading falls back to
// the title.
func ParseDocument(raw []byte, docType Type, lang Lang, fileSlug string) (Document, error) {
	metaRaw, bodyRaw, err := splitFrontmatter(raw)
	if err != nil {
		return Document{}, err
	}

	bodyRaw = bytes.TrimSpace(bodyRaw)

	var meta metadata
	if len(bytes.TrimSpace(metaRaw)) > 0 {
		if err := yaml.Unmarshal(metaRaw, &meta); err != nil {
			return Document{}, errors.Join(ErrInvalidFrontmatter, err)
		}
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = fileSlug
	}

	title := meta.Title
	if title == "" {
		title = slug
	}

	doc := Document{
		Type:        docType,
		Lang:        lang,
		Slug:        slug,
		FileSlug:    fileSlug,
		Title:       title,
		Date:        string(meta.Date),
		Description: meta.Description,
		Body:        string(bodyRaw),
	}

	doc.Hero = Hero{
		Heading: meta.Hero.Heading,
		Sub:     meta.Hero.Sub,
		Image:   meta.Hero.Image,
	}
	if doc.Hero.Heading == "" {
		doc.Hero.Heading = title
	}

	doc.SEO = SEO{
		Title:       meta.SEO.Title,
		Description: meta.SEO.Description,
		Canonical:   meta.SEO.Canonical,
		Noindex:     meta.SEO.Noindex,
	}

	return doc, nil
}
