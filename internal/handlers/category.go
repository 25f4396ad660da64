// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

// Categories groups the HTTP handlers for the category aggregate.
type Categories struct {
	service *service.CategoryService
}

// NewCategories creates a new Categories handler group.
func NewCategories(svc *service.CategoryService) *Categories {
	return &Categories{service: svc}
}

// categoryRequest is the JSON body accepted by the create-or-update
// endpoint. Code decides create vs update; on create its value is replaced.
type categoryRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	IconName    *string `json:"icon_name"`
}

// toModel maps the request body onto a Category entity, field by field.
func (r *categoryRequest) toModel() *models.Category {
	return &models.Category{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		IconName:    r.IconName,
	}
}

// List handles GET /categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List()
	if err != nil {
		respondError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// Get handles GET /categories/{code}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	category, err := h.service.GetByCode(code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// Save handles POST /categories. It creates or updates depending on
// whether the submitted code matches an existing category, and answers
// 201 in both cases.
func (h *Categories) Save(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("decode category body: %w", service.ErrInvalidArgument))
		return
	}

	saved, err := h.service.SaveOrUpdate(req.toModel())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// Delete handles DELETE /categories/{code}. The category aggregate answers
// 200 on success, unlike posts which answer 204.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.DeleteByCode(code); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

// ListWithPosts handles GET /categories/with-posts: every category with up
// to its 3 newest posts attached.
func (h *Categories) ListWithPosts(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListWithRecentPosts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, grouped)
}

// PostsByName handles GET /categories/{name}/posts: the named category
// with all of its posts, newest first.
func (h *Categories) PostsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	view, err := h.service.PostsByCategoryName(name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
