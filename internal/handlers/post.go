// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

// defaultRecentLimit is how many posts /posts/recent returns when the
// caller does not pass a limit.
const defaultRecentLimit = 3

// Posts groups the HTTP handlers for the post aggregate.
type Posts struct {
	service *service.PostService
}

// NewPosts creates a new Posts handler group.
func NewPosts(svc *service.PostService) *Posts {
	return &Posts{service: svc}
}

// postRequest is the JSON body accepted by the create-or-update endpoint.
// A present ID selects the update path.
type postRequest struct {
	ID           *int64  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	CategoryCode string  `json:"category_code"`
}

// toModel maps the request body onto a Post entity, field by field.
func (r *postRequest) toModel() *models.Post {
	p := &models.Post{
		Title:        r.Title,
		Description:  r.Description,
		CategoryCode: r.CategoryCode,
	}
	if r.ID != nil {
		p.ID = *r.ID
	}
	return p
}

// List handles GET /posts.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List()
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	respondJSON(w, http.StatusOK, posts)
}

// Get handles GET /posts/{id}. The route only matches numeric IDs.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, fmt.Errorf("post id must be numeric: %w", service.ErrInvalidArgument))
		return
	}

	post, err := h.service.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Save handles POST /posts. Unlike category creation, a successful save
// answers 200 regardless of branch.
func (h *Posts) Save(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("decode post body: %w", service.ErrInvalidArgument))
		return
	}

	saved, err := h.service.SaveOrUpdate(req.toModel())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// Delete handles DELETE /posts/{id} and answers 204 on success.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, fmt.Errorf("post id must be numeric: %w", service.ErrInvalidArgument))
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recent handles GET /posts/recent?limit=N. A missing or malformed limit
// falls back to the default; the value itself is passed through unchecked.
func (h *Posts) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	posts, err := h.service.Recent(limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	respondJSON(w, http.StatusOK, posts)
}
