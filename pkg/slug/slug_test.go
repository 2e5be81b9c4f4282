// Copyright (c) 2026 Calyna. All rights reserved.
// Author: olena.koval.care@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okoval/calyna/pkg/slug"
)

/*
TestFrom checks the normalization pipeline on representative inputs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Work With Me", "work-with-me"},
		{"accents", "Séance Thérapie", "seance-therapie"},
		{"punctuation", "services!!", "services"},
		{"collapse_hyphens", "a -- b", "a-b"},
		{"trailing_hyphen_trimmed", "legacy-", "legacy"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestIsNormalized checks the linter predicate: clean slugs pass, legacy
trailing-hyphen names do not.
*/
func TestIsNormalized(t *testing.T) {
	assert.True(t, slug.IsNormalized("work-with-me"))
	assert.True(t, slug.IsNormalized("services"))
	assert.False(t, slug.IsNormalized("services-"))
	assert.False(t, slug.IsNormalized("Services"))
	assert.False(t, slug.IsNormalized(""))
}
