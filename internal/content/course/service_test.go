// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package course_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/content/course"
	"github.com/abhisheknv/portfolio-api/internal/platform/apperr"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	rows []*course.Course
}

func (f *fakeRepository) List(_ context.Context, adminID string, _ course.Filter, limit, offset int) ([]*course.Course, int, error) {
	var matched []*course.Course
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

func (f *fakeRepository) Get(_ context.Context, adminID, id string) (*course.Course, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, c *course.Course) error {
	f.rows = append(f.rows, c)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, c *course.Course) error {
	for i, row := range f.rows {
		if row.AdminID == c.AdminID && row.ID == c.ID {
			f.rows[i] = c
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

func newService(repo course.Repository) *course.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return course.NewService(repo, logger)
}

func priceOf(value float64) *float64 { return &value }

/*
TestService_Create covers price presence and range validation.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("free_course_at_zero_price", func(t *testing.T) {
		service := newService(&fakeRepository{})

		entry, err := service.Create(ctx, "owner-1", course.Input{
			Title:       "Intro to Go",
			Description: "A free starter course.",
			Price:       priceOf(0),
		})
		require.NoError(t, err)
		assert.Zero(t, entry.Price)
	})

	t.Run("missing_price_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(ctx, "owner-1", course.Input{
			Title:       "Intro to Go",
			Description: "A course without a price tag.",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, course.FieldPrice, ae.Details[0].Field)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(ctx, "owner-1", course.Input{
			Title:       "Intro to Go",
			Description: "Priced below zero.",
			Price:       priceOf(-5),
		})
		require.Error(t, err)
	})

	t.Run("discount_out_of_range_rejected", func(t *testing.T) {
		service := newService(&fakeRepository{})

		_, err := service.Create(ctx, "owner-1", course.Input{
			Title:       "Intro to Go",
			Description: "Discounted past free.",
			Price:       priceOf(49.99),
			Discount:    120,
		})
		require.Error(t, err)
	})
}

/*
TestFilterFromRequest pins the query-parameter names the dashboard and the
public site both send.
*/
func TestFilterFromRequest(t *testing.T) {
	t.Run("all_parameters", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?search=go&minPrice=10&maxPrice=99.5", nil)

		filter := course.FilterFromRequest(request)

		assert.Equal(t, "go", filter.Query)
		require.NotNil(t, filter.MinPrice)
		assert.Equal(t, 10.0, *filter.MinPrice)
		require.NotNil(t, filter.MaxPrice)
		assert.Equal(t, 99.5, *filter.MaxPrice)
	})

	t.Run("absent_bounds_stay_nil", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?search=go", nil)

		filter := course.FilterFromRequest(request)

		assert.Nil(t, filter.MinPrice)
		assert.Nil(t, filter.MaxPrice)
	})

	t.Run("unparseable_bounds_ignored", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?minPrice=cheap", nil)

		filter := course.FilterFromRequest(request)

		assert.Nil(t, filter.MinPrice)
	})
}
