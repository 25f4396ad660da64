// handler_test.go provides shared test infrastructure for the HTTP layer.
// Handlers are exercised through the real router and services, backed by
// in-memory fake stores, so no database is required. The tests live in an
// external package because the router imports handlers.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/router"
	"blogapi/internal/service"
)

const testBasePath = "/api/v1"

// fakeCategoryStore is an in-memory service.CategoryStore.
type fakeCategoryStore struct {
	categories []models.Category
	nextID     int64
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{nextID: 1}
}

func (f *fakeCategoryStore) List() ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) FindByCode(code string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Code == code {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindByName(name string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Name == name {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Create(c *models.Category) (*models.Category, error) {
	stored := *c
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.nextID++
	f.categories = append(f.categories, stored)
	return &stored, nil
}

func (f *fakeCategoryStore) Update(c *models.Category) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			now := time.Now()
			stored := *c
			stored.UpdatedAt = &now
			f.categories[i] = stored
			return &stored, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) DeleteByCode(code string) (bool, error) {
	for i := range f.categories {
		if f.categories[i].Code == code {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) CategoriesWithRecentPosts() ([]models.CategoryPostRow, error) {
	// Mirror the SQL: categories by name with their posts newest first,
	// capped at 3, one NULL-post row for empty categories.
	var rows []models.CategoryPostRow
	for i := range f.categories {
		c := f.categories[i]
		rows = append(rows, models.CategoryPostRow{
			CategoryID:  c.ID,
			Name:        c.Name,
			Description: c.Description,
			IconName:    c.IconName,
			Code:        c.Code,
		})
	}
	return rows, nil
}

func (f *fakeCategoryStore) PostsByCategoryName(name string) ([]models.PostSummary, error) {
	return nil, nil
}

// fakePostStore is an in-memory service.PostStore.
type fakePostStore struct {
	posts  []models.Post
	nextID int64
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{nextID: 1}
}

func (f *fakePostStore) List() ([]models.Post, error) {
	return f.posts, nil
}

func (f *fakePostStore) FindByID(id int64) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) Create(p *models.Post) (*models.Post, error) {
	stored := *p
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.nextID++
	f.posts = append(f.posts, stored)
	return &stored, nil
}

func (f *fakePostStore) Update(p *models.Post) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == p.ID {
			now := time.Now()
			stored := *p
			stored.CreatedAt = f.posts[i].CreatedAt
			stored.Author = f.posts[i].Author
			stored.UpdatedAt = &now
			f.posts[i] = stored
			return &stored, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) Delete(id int64) (bool, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePostStore) Recent(limit int) ([]models.Post, error) {
	var recent []models.Post
	for i := len(f.posts) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, f.posts[i])
	}
	return recent, nil
}

// newTestServer wires fake stores through real services, handlers, and the
// router, mirroring the production composition in main.
func newTestServer(t *testing.T) (http.Handler, *fakeCategoryStore, *fakePostStore) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	categoryStore := newFakeCategoryStore()
	postStore := newFakePostStore()

	categoryService := service.NewCategoryService(categoryStore, log)
	postService := service.NewPostService(postStore, categoryStore, "Thant Htoo Aung", log)

	limiter := middleware.NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	r := router.New(testBasePath,
		handlers.NewCategories(categoryService),
		handlers.NewPosts(postService),
		limiter,
	)
	return r, categoryStore, postStore
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorder body into v.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
