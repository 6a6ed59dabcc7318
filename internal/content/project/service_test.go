// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package project_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/content/project"
	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository with owner scoping.
type fakeRepository struct {
	rows []*project.Project
}

func (f *fakeRepository) List(_ context.Context, adminID string, filter project.Filter, limit, offset int) ([]*project.Project, int, error) {
	var matched []*project.Project
	for _, row := range f.rows {
		if row.AdminID != adminID {
			continue
		}
		if filter.Type != "" && row.Type != filter.Type {
			continue
		}
		if filter.Query != "" &&
			!strings.Contains(strings.ToLower(row.Title), strings.ToLower(filter.Query)) &&
			!strings.Contains(strings.ToLower(row.Description), strings.ToLower(filter.Query)) {
			continue
		}
		matched = append(matched, row)
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

func (f *fakeRepository) Get(_ context.Context, adminID, id string) (*project.Project, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, p *project.Project) error {
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *project.Project) error {
	for i, row := range f.rows {
		if row.AdminID == p.AdminID && row.ID == p.ID {
			f.rows[i] = p
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

func newService(repo project.Repository) *project.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return project.NewService(repo, logger)
}

func validInput() project.Input {
	return project.Input{
		Title:        "Portfolio API",
		Description:  "REST backend for the portfolio site",
		Technologies: []string{"Go", "Postgres"},
		Type:         project.TypeBackend,
	}
}

/*
TestService_Create covers validation of the project type and URLs.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid_project", func(t *testing.T) {
		service := newService(&fakeRepository{})

		created, err := service.Create(ctx, "owner-1", validInput())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "owner-1", created.AdminID)
	})

	t.Run("unknown_type_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		input := validInput()
		input.Type = "Machine Learning"

		_, err := service.Create(ctx, "owner-1", input)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("bad_link_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		input := validInput()
		input.ProjectLink = "not a url"

		_, err := service.Create(ctx, "owner-1", input)
		require.Error(t, err)
	})
}

/*
TestService_OwnerScoping verifies that one owner can never read or mutate
another owner's rows.
*/
func TestService_OwnerScoping(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{}
	service := newService(repo)

	mine, err := service.Create(ctx, "owner-1", validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "Someone else's work"
	_, err = service.Create(ctx, "owner-2", input)
	require.NoError(t, err)

	t.Run("list_is_scoped", func(t *testing.T) {
		entries, total, err := service.List(ctx, "owner-1", project.Filter{}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, mine.ID, entries[0].ID)
	})

	t.Run("cross_owner_get_is_not_found", func(t *testing.T) {
		_, err := service.Get(ctx, "owner-2", mine.ID)
		require.Error(t, err)
	})

	t.Run("cross_owner_delete_is_not_found", func(t *testing.T) {
		err := service.Delete(ctx, "owner-2", mine.ID)
		require.Error(t, err)

		// The row must survive the failed attempt.
		_, err = service.Get(ctx, "owner-1", mine.ID)
		require.NoError(t, err)
	})
}

/*
TestService_ListFilter checks the search and type filters.
*/
func TestService_ListFilter(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{}
	service := newService(repo)

	backend := validInput()
	_, err := service.Create(ctx, "owner-1", backend)
	require.NoError(t, err)

	frontend := validInput()
	frontend.Title = "Dashboard UI"
	frontend.Type = project.TypeFrontend
	_, err = service.Create(ctx, "owner-1", frontend)
	require.NoError(t, err)

	entries, total, err := service.List(ctx, "owner-1", project.Filter{Type: project.TypeFrontend}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Dashboard UI", entries[0].Title)

	_, total, err = service.List(ctx, "owner-1", project.Filter{Query: "dashboard"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
