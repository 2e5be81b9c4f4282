// Copyright (c) 2026 Calyna. All rights reserved.
// Author: olena.koval.care@gmail.com

// Command contentcheck lints the on-disk content tree before deploy.
//
// It reports, per (content type, language) partition:
//
//   - files whose frontmatter fails to parse (these are silently skipped
//     at serving time, so the linter is the only place authors see them)
//   - canonical slug collisions (two files claiming the same slug)
//   - canonical slugs that are not in normalized slug form (legacy
//     trailing-hyphen names still resolve, but new content should be clean)
//   - posts whose date is missing or unparsable (they sort to the end of
//     the listing)
//
// Exit status is 1 when any finding is reported.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okoval/calyna/internal/content"
	"github.com/okoval/calyna/pkg/slug"
)

func main() {
	contentDir := flag.String("content", "./content", "root of the content tree")
	flag.Parse()

	findings := 0
	report := func(format string, args ...any) {
		findings++
		fmt.Printf(format+"\n", args...)
	}

	for _, docType := range []content.Type{content.TypePage, content.TypePost} {
		dir := filepath.Join(*contentDir, docType.Dir())

		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				// An absent directory serves as zero documents; worth a
				// note but not a failure.
				fmt.Printf("note: %s missing (no %ss)\n", dir, docType)
				continue
			}
			fmt.Fprintf(os.Stderr, "contentcheck: %v\n", err)
			os.Exit(2)
		}

		for _, lang := range content.Languages() {
			suffix := "." + string(lang) + ".mdx"
			seen := map[string]string{}

			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
					continue
				}
				path := filepath.Join(dir, entry.Name())

				raw, err := os.ReadFile(path)
				if err != nil {
					report("error: %s: %v", path, err)
					continue
				}

				fileSlug := strings.TrimSuffix(entry.Name(), suffix)
				doc, err := content.ParseDocument(raw, docType, lang, fileSlug)
				if err != nil {
					report("error: %s: %v (file will be skipped at serving time)", path, err)
					continue
				}

				if prev, ok := seen[doc.Slug]; ok {
					report("error: %s: canonical slug %q already claimed by %s", path, doc.Slug, prev)
				} else {
					seen[doc.Slug] = path
				}

				if !slug.IsNormalized(doc.Slug) {
					report("warn: %s: canonical slug %q is not normalized (suggest %q)",
						path, doc.Slug, slug.From(doc.Slug))
				}

				if docType == content.TypePost && doc.Date == "" {
					report("warn: %s: post has no parsable date; it will sort last", path)
				}
			}
		}
	}

	if findings > 0 {
		fmt.Printf("contentcheck: %d finding(s)\n", findings)
		os.Exit(1)
	}
	fmt.Println("contentcheck: content tree is clean")
}
