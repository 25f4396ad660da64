// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"blogapi/internal/models"
)

func TestCategoryEndpoints(t *testing.T) {
	h, _, _ := newTestServer(t)

	t.Run("empty list returns JSON array", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, testBasePath+"/categories", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", w.Code)
		}
		if got := w.Body.String(); got != "[]\n" {
			t.Errorf("body: got %q, want empty JSON array", got)
		}
	})

	t.Run("create answers 201 with generated code", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, testBasePath+"/categories", map[string]any{
			"name": "Tech",
			"code": "ignored-by-create",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body.String())
		}

		var created models.Category
		decodeBody(t, w, &created)
		if created.Code == "" || created.Code == "ignored-by-create" {
			t.Errorf("code: got %q, want a generated value", created.Code)
		}
		if created.ID == 0 {
			t.Error("id should be assigned")
		}
	})

	t.Run("create with blank name answers 400", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, testBasePath+"/categories", map[string]any{
			"name": "   ",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", w.Code)
		}
	})

	t.Run("get missing code answers 404", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, testBasePath+"/categories/no-such-code", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", w.Code)
		}
	})

	t.Run("delete missing code answers 404", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, testBasePath+"/categories/no-such-code", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", w.Code)
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, testBasePath+"/categories", "not an object")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", w.Code)
		}
	})
}

func TestCategoriesWithPostsEndpoint(t *testing.T) {
	h, categoryStore, _ := newTestServer(t)

	categoryStore.Create(&models.Category{Name: "Empty", Code: "empty-code"})

	w := doJSON(t, h, http.MethodGet, testBasePath+"/categories/with-posts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var grouped []models.CategoryPosts
	decodeBody(t, w, &grouped)
	if len(grouped) != 1 {
		t.Fatalf("groups: got %d, want 1", len(grouped))
	}
	// A category without posts is still present, with an empty post list.
	if grouped[0].Posts == nil || len(grouped[0].Posts) != 0 {
		t.Errorf("posts: got %v, want empty list", grouped[0].Posts)
	}
}

func TestCategorySiblingRoutes(t *testing.T) {
	h, categoryStore, _ := newTestServer(t)
	categoryStore.Create(&models.Category{Name: "Tech", Code: "tech-code"})

	// /{code} and /{name}/posts are sibling route patterns; each request
	// must reach its own handler.
	w := doJSON(t, h, http.MethodGet, testBasePath+"/categories/tech-code", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get by code: got %d, want 200", w.Code)
	}
	var c models.Category
	decodeBody(t, w, &c)
	if c.Name != "Tech" {
		t.Errorf("name: got %q, want %q", c.Name, "Tech")
	}

	w = doJSON(t, h, http.MethodGet, testBasePath+"/categories/Tech/posts", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("posts by name: got %d, want 404 for a category with no posts", w.Code)
	}
	// The body proves the posts-by-name handler answered, not the code lookup.
	if body := w.Body.String(); !strings.Contains(body, "no posts") {
		t.Errorf("body: got %q, want the zero-posts message", body)
	}
}

func TestPostsByCategoryNameEndpoint(t *testing.T) {
	h, categoryStore, _ := newTestServer(t)
	categoryStore.Create(&models.Category{Name: "Quiet", Code: "quiet-code"})

	// Category exists but has zero posts, which is still a 404.
	w := doJSON(t, h, http.MethodGet, testBasePath+"/categories/Quiet/posts", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
