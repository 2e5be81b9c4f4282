package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// fileExt is the document file extension. Bodies are Markdown; the mdx
// extension is kept for compatibility with the existing content tree.
const fileExt = ".mdx"

// FSStore is the filesystem [Store]: a directory per content type, one
// file per (document, language), named <slug-or-legacy-name>.<lang>.mdx.
//
// There is deliberately no cache. Content changes land as file edits and
// the next request sees them; the tree is read-only at serving time so no
// locking is needed either.
type FSStore struct {
	root   string
	logger *slog.Logger
}

// NewFSStore creates a store rooted at dir.
func NewFSStore(dir string, logger *slog.Logger) *FSStore {
	return &FSStore{root: dir, logger: logger}
}

// Ping reports whether the content root exists and is a directory.
// Used by the readiness probe only; the serving path tolerates a missing
// root by returning zero documents.
func (store *FSStore) Ping(ctx context.Context) error {
	info, err := os.Stat(store.root)
	if err != nil {
		return fmt.Errorf("content root %q: %w", store.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content root %q is not a directory", store.root)
	}
	return nil
}

// Get implements [Store]. The requested slug is used verbatim as the
// filename stem — the direct-path fast path of the resolution algorithm.
func (store *FSStore) Get(ctx context.Context, docType Type, slug string, lang Lang) (Document, error) {
	path := filepath.Join(store.root, docType.Dir(), slug+langSuffix(lang))

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := ParseDocument(raw, docType, lang, slug)
	if err != nil {
		store.logParseSkipped(ctx, path, err)
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// List implements [Store]. One malformed file never takes down the rest
// of the language: it is logged and treated as absent.
func (store *FSStore) List(ctx context.Context, docType Type, lang Lang) ([]Document, error) {
	dir := filepath.Join(store.root, docType.Dir())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	suffix := langSuffix(lang)
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			store.logParseSkipped(ctx, path, err)
			continue
		}

		fileSlug := strings.TrimSuffix(entry.Name(), suffix)
		doc, err := ParseDocument(raw, docType, lang, fileSlug)
		if err != nil {
			store.logParseSkipped(ctx, path, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Settings implements [Store]. Settings files are author-managed JSON
// (siteSettings.<lang>.json); the payload is validated but served as-is.
func (store *FSStore) Settings(ctx context.Context, lang Lang) ([]byte, error) {
	path := filepath.Join(store.root, "settings", "siteSettings."+string(lang)+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("settings %s: invalid JSON", path)
	}
	return raw, nil
}

func (store *FSStore) logParseSkipped(ctx context.Context, path string, err error) {
	store.logger.WarnContext(ctx, "content_parse_skipped",
		slog.String("path", path),
		slog.Any("error", err),
	)
}

// langSuffix returns the ".<lang>.mdx" filename suffix.
func langSuffix(lang Lang) string {
	return "." + string(lang) + fileExt
}
