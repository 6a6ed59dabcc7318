// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisheknv/portfolio-api/pkg/slug"
)

/*
TestFrom checks title-to-slug normalization.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation", "Go, Postgres & Redis!", "go-postgres-redis"},
		{"diacritics", "Café Déjà Vu", "cafe-deja-vu"},
		{"extra_whitespace", "  spaced   out  ", "spaced-out"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"numbers", "Top 10 Tips for 2026", "top-10-tips-for-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
