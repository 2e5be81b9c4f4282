package content_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/calyna/internal/content"
)

// newTestStore builds an FSStore over a fresh temp tree with pages/ and
// posts/ subdirectories.
func newTestStore(t *testing.T) (*content.FSStore, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pages"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "posts"), 0o755))
	return content.NewFSStore(root, slog.New(slog.DiscardHandler)), root
}

func writeFile(t *testing.T, root, dir, name, raw string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, dir, name), []byte(raw), 0o644))
}

/*
TestFSStore_Get covers the direct-filename fast path: hits, misses, and a
broken file reported as not found.
*/
func TestFSStore_Get(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	writeFile(t, root, "pages", "services.en.mdx", "---\ntitle: Services\n---\nbody text")
	writeFile(t, root, "pages", "broken.en.mdx", "---\ntitle: [oops\n---\nbody")

	t.Run("direct_hit", func(t *testing.T) {
		doc, err := store.Get(ctx, content.TypePage, "services", content.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, "services", doc.Slug)
		assert.Equal(t, "body text", doc.Body)
	})

	t.Run("wrong_language_misses", func(t *testing.T) {
		_, err := store.Get(ctx, content.TypePage, "services", content.LangRussian)
		assert.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := store.Get(ctx, content.TypePage, "nope", content.LangEnglish)
		assert.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("broken_file_reads_as_absent", func(t *testing.T) {
		_, err := store.Get(ctx, content.TypePage, "broken", content.LangEnglish)
		assert.ErrorIs(t, err, content.ErrNotFound)
	})
}

/*
TestFSStore_List covers language filtering, the skip-malformed policy, and
the absent-directory-is-empty contract.
*/
func TestFSStore_List(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	writeFile(t, root, "posts", "one.en.mdx", "---\ntitle: One\ndate: 2024-01-01\n---\na")
	writeFile(t, root, "posts", "two.en.mdx", "---\ntitle: Two\ndate: 2024-06-01\n---\nb")
	writeFile(t, root, "posts", "three.ukr.mdx", "---\ntitle: Three\n---\nc")
	writeFile(t, root, "posts", "bad.en.mdx", "---\ntitle: [broken\n---\nd")

	t.Run("filters_by_language", func(t *testing.T) {
		docs, err := store.List(ctx, content.TypePost, content.LangEnglish)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		docs, err = store.List(ctx, content.TypePost, content.LangUkrainian)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "three", docs[0].Slug)
	})

	t.Run("missing_directory_is_empty", func(t *testing.T) {
		empty := content.NewFSStore(filepath.Join(root, "does-not-exist"), slog.New(slog.DiscardHandler))
		docs, err := empty.List(ctx, content.TypePost, content.LangEnglish)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

/*
TestFSStore_Settings checks the per-language settings payload handling.
*/
func TestFSStore_Settings(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "settings"), 0o755))
	writeFile(t, root, "settings", "siteSettings.en.json", `{"nav":{"cta":"Book a session"}}`)
	writeFile(t, root, "settings", "siteSettings.ru.json", `{not json`)

	t.Run("returns_raw_json", func(t *testing.T) {
		raw, err := store.Settings(ctx, content.LangEnglish)
		require.NoError(t, err)
		assert.JSONEq(t, `{"nav":{"cta":"Book a session"}}`, string(raw))
	})

	t.Run("missing_language", func(t *testing.T) {
		_, err := store.Settings(ctx, content.LangUkrainian)
		assert.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("invalid_json_is_an_error", func(t *testing.T) {
		_, err := store.Settings(ctx, content.LangRussian)
		require.Error(t, err)
		assert.NotErrorIs(t, err, content.ErrNotFound)
	})
}

/*
TestFSStore_Ping checks the readiness probe contract.
*/
func TestFSStore_Ping(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))

	missing := content.NewFSStore("/definitely/not/here", slog.New(slog.DiscardHandler))
	assert.Error(t, missing.Ping(context.Background()))
}
