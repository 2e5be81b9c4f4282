package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a [Store] when no document matches. A file
// that exists but cannot be parsed is reported the same way: the skip
// policy treats broken files as absent.
var ErrNotFound = errors.New("document not found")

// Store is the repository contract over the document tree.
//
// Implementations own no derived state: every call reads the backing
// storage fresh. Wrapping the directory scan behind this interface keeps
// callers ignorant of the layout so an indexed or cached implementation
// can be swapped in later without touching the resolver.
type Store interface {
	// Get loads the document stored directly under the requested slug's
	// filename. It does NOT apply canonical-slug matching — that is the
	// resolver's job on top of List.
	Get(ctx context.Context, docType Type, slug string, lang Lang) (Document, error)

	// List returns every parsable document of the given type and
	// language. A missing content directory yields an empty slice, not
	// an error; malformed documents are skipped.
	List(ctx context.Context, docType Type, lang Lang) ([]Document, error)

	// Settings returns the raw per-language site settings JSON.
	Settings(ctx context.Context, lang Lang) ([]byte, error)
}
