// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package experience_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/content/experience"
	"github.com/abhisheknv/portfolio-api/internal/platform/ctxutil"
	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
	"github.com/abhisheknv/portfolio-api/internal/platform/sec"
)

// fakeRepository is an in-memory Repository for handler tests.
type fakeRepository struct {
	rows []*experience.Experience
}

func (f *fakeRepository) List(_ context.Context, adminID string) ([]*experience.Experience, error) {
	var matched []*experience.Experience
	for _, row := range f.rows {
		if row.AdminID == adminID {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (f *fakeRepository) Get(_ context.Context, adminID, id string) (*experience.Experience, error) {
	for _, row := range f.rows {
		if row.AdminID == adminID && row.ID == id {
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, e *experience.Experience) error {
	f.rows = append(f.rows, e)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, e *experience.Experience) error {
	for i, row := range f.rows {
		if row.AdminID == e.AdminID && row.ID == e.ID {
			f.rows[i] = e
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

// newRouter mounts the handler behind a stand-in for the session gate that
// authenticates every request as owner-1.
func newRouter(repo *fakeRepository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := experience.NewHandler(experience.NewService(repo, logger))

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := ctxutil.WithAuthClaims(request.Context(), &sec.AuthClaims{AdminID: "owner-1"})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	})
	handler.RegisterRoutes(router)

	return router
}

/*
TestHandler_Upsert covers the id-less save surface: a body without an id
creates a new entry, a body carrying one updates it, and POST and PUT are
interchangeable.
*/
func TestHandler_Upsert(t *testing.T) {
	repo := &fakeRepository{}
	router := newRouter(repo)

	entryID := func(recorder *httptest.ResponseRecorder) string {
		var envelope struct {
			Data experience.Experience `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return envelope.Data.ID
	}

	t.Run("post_without_id_creates", func(t *testing.T) {
		body := `{"company":"Acme","role":"Engineer","start_date":"Jan 2023"}`
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusCreated, recorder.Code)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "owner-1", repo.rows[0].AdminID)
	})

	t.Run("put_without_id_also_creates", func(t *testing.T) {
		body := `{"company":"Initech","role":"Consultant","start_date":"Mar 2024"}`
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusCreated, recorder.Code)
		assert.Len(t, repo.rows, 2)
	})

	t.Run("put_with_body_id_updates", func(t *testing.T) {
		create := httptest.NewRequest(http.MethodPost, "/",
			strings.NewReader(`{"company":"Hooli","role":"Intern","start_date":"Jun 2022"}`))
		created := httptest.NewRecorder()
		router.ServeHTTP(created, create)
		require.Equal(t, http.StatusCreated, created.Code)
		id := entryID(created)

		body := `{"id":"` + id + `","company":"Hooli","role":"Engineer","start_date":"Jun 2022"}`
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		updated, err := repo.Get(context.Background(), "owner-1", id)
		require.NoError(t, err)
		assert.Equal(t, "Engineer", updated.Role)
		assert.Len(t, repo.rows, 3)
	})

	t.Run("unknown_body_id_not_found", func(t *testing.T) {
		body := `{"id":"missing-id","company":"Acme","role":"Engineer","start_date":"Jan 2023"}`
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
