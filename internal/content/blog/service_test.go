// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package blog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/content/blog"
	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

// fakeRepository enforces the (admin_id, slug) uniqueness the real table has.
type fakeRepository struct {
	rows []*blog.Blog
}

func (f *fakeRepository) List(_ context.Context, adminID string, _ blog.Filter, limit, offset int) ([]*blog.Blog, int, error) {
	var matched []*blog.Blog
	for _, row := range f.rows {
		if row.AdminID == adminID {
			matched = append(matched, row)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) Get(_ context.Context, adminID, id string) (*blog.Blog, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) GetBySlug(_ context.Context, adminID, slug string) (*blog.Blog, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.Slug == slug {
			copied := *row
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, b *blog.Blog) error {
	for _, row := range f.rows {
		if row.AdminID == b.AdminID && row.Slug == b.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.rows = append(f.rows, b)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, b *blog.Blog) error {
	for i, row := range f.rows {
		if row.AdminID == b.AdminID && row.ID == b.ID {
			f.rows[i] = b
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeRepository) Delete(_ context.Context, adminID, id string) error {
	for i, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService(repo blog.Repository) *blog.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return blog.NewService(repo, logger)
}

func validInput() blog.Input {
	return blog.Input{
		Title:       "Why I Rewrote My Portfolio in Go",
		Description: "Notes from the migration",
		Content:     "Long-form body...",
	}
}

/*
TestService_Create covers slug derivation and collision handling.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("slug_derived_from_title", func(t *testing.T) {
		service := newService(&fakeRepository{})

		created, err := service.Create(ctx, "owner-1", validInput())
		require.NoError(t, err)
		assert.Equal(t, "why-i-rewrote-my-portfolio-in-go", created.Slug)
	})

	t.Run("colliding_title_gets_suffixed_slug", func(t *testing.T) {
		service := newService(&fakeRepository{})

		first, err := service.Create(ctx, "owner-1", validInput())
		require.NoError(t, err)

		second, err := service.Create(ctx, "owner-1", validInput())
		require.NoError(t, err)

		assert.NotEqual(t, first.Slug, second.Slug)
		assert.Contains(t, second.Slug, first.Slug+"-")
	})

	t.Run("missing_content_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		input := validInput()
		input.Content = ""

		_, err := service.Create(ctx, "owner-1", input)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}

/*
TestService_Update verifies that a title edit leaves published slugs intact.
*/
func TestService_Update(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{}
	service := newService(repo)

	created, err := service.Create(ctx, "owner-1", validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "A Completely Different Title"

	updated, err := service.Update(ctx, "owner-1", created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "A Completely Different Title", updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)

	// The old link keeps resolving.
	bySlug, err := service.GetBySlug(ctx, "owner-1", created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

/*
TestService_OwnerScoping verifies cross-owner reads fail.
*/
func TestService_OwnerScoping(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{}
	service := newService(repo)

	created, err := service.Create(ctx, "owner-1", validInput())
	require.NoError(t, err)

	_, err = service.Get(ctx, "owner-2", created.ID)
	require.Error(t, err)

	_, err = service.GetBySlug(ctx, "owner-2", created.Slug)
	require.Error(t, err)
}
