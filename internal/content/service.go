package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/okoval/calyna/internal/platform/apperr"
)

// Service resolves documents and builds post listings on top of a [Store].
//
// It owns no state beyond its collaborators: every call is a pure function
// of the store contents at call time.
type Service struct {
	store    Store
	renderer *Renderer
	logger   *slog.Logger
}

// NewService wires the resolver over a store and a markdown renderer.
func NewService(store Store, renderer *Renderer, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// CandidateSlugs returns the slugs a request may match under the legacy
// trailing-hyphen filename convention: the slug itself plus its
// hyphen-normalized variant. "foo" also tries "foo-"; "foo-" also tries
// "foo". Pure so the matching rule is testable without any I/O.
func CandidateSlugs(requested string) []string {
	variant := requested + "-"
	if strings.HasSuffix(requested, "-") {
		variant = strings.TrimRight(requested, "-")
	}
	if variant == requested {
		return []string{requested}
	}
	return []string{requested, variant}
}

// ResolvePage finds the page document for (slug, lang).
//
// Returns NOT_FOUND after the full candidate search; this is the one
// not-found policy used everywhere (no sentinel records).
func (service *Service) ResolvePage(ctx context.Context, slug string, lang Lang) (*Page, error) {
	doc, err := service.resolve(ctx, TypePage, slug, lang)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Page")
		}
		return nil, apperr.Internal(err)
	}

	bodyHTML, err := service.renderer.Render(doc.Body)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Page{
		Slug:     doc.Slug,
		Lang:     lang,
		Title:    doc.Title,
		Hero:     doc.Hero,
		SEO:      doc.SEO,
		Body:     doc.Body,
		BodyHTML: bodyHTML,
	}, nil
}

// ResolvePost finds the post document for (slug, lang) under the same
// resolution algorithm as pages.
func (service *Service) ResolvePost(ctx context.Context, slug string, lang Lang) (*Post, error) {
	doc, err := service.resolve(ctx, TypePost, slug, lang)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Post")
		}
		return nil, apperr.Internal(err)
	}

	bodyHTML, err := service.renderer.Render(doc.Body)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Post{
		Slug:        doc.Slug,
		Title:       doc.Title,
		Date:        doc.Date,
		Description: doc.Description,
		Body:        doc.Body,
		BodyHTML:    bodyHTML,
	}, nil
}

// ListPosts returns summaries for every post in lang, newest first.
//
// Dates are normalized YYYY-MM-DD strings, so the descending string sort
// is a calendar sort. Undated posts go last — an explicit rule, not the
// accident of empty strings comparing smallest.
func (service *Service) ListPosts(ctx context.Context, lang Lang) ([]PostSummary, error) {
	docs, err := service.store.List(ctx, TypePost, lang)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	summaries := make([]PostSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, PostSummary{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Date:        doc.Date,
			Description: doc.Description,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Date, summaries[j].Date
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})
	return summaries, nil
}

// Settings returns the per-language site settings payload.
func (service *Service) Settings(ctx context.Context, lang Lang) (json.RawMessage, error) {
	raw, err := service.store.Settings(ctx, lang)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Settings")
		}
		return nil, apperr.Internal(err)
	}
	return json.RawMessage(raw), nil
}

// resolve implements the two-step resolution algorithm.
//
// Step 1: direct filename match — the file is located by name, but a
// non-empty frontmatter slug still wins as the returned canonical slug.
// Step 2: scan all documents of the partition and return the first whose
// canonical slug is in the candidate set.
func (service *Service) resolve(ctx context.Context, docType Type, slug string, lang Lang) (Document, error) {
	doc, err := service.store.Get(ctx, docType, slug, lang)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Document{}, err
	}

	docs, err := service.store.List(ctx, docType, lang)
	if err != nil {
		return Document{}, err
	}

	candidates := CandidateSlugs(slug)
	for _, doc := range docs {
		for _, candidate := range candidates {
			if doc.Slug == candidate {
				return doc, nil
			}
		}
	}
	return Document{}, ErrNotFound
}
