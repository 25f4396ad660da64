// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"fmt"
	"log/slog"

	"blogapi/internal/models"
)

// PostStore is the persistence surface the post service depends on.
type PostStore interface {
	List() ([]models.Post, error)
	FindByID(id int64) (*models.Post, error)
	Create(p *models.Post) (*models.Post, error)
	Update(p *models.Post) (*models.Post, error)
	Delete(id int64) (bool, error)
	Recent(limit int) ([]models.Post, error)
}

// CategoryResolver is the slice of the category store the post service
// needs to resolve category codes into rows.
type CategoryResolver interface {
	FindByCode(code string) (*models.Category, error)
}

// PostService handles the post lifecycle. Every save resolves the owning
// category from the submitted code; posts without an author get the
// configured default.
type PostService struct {
	store         PostStore
	categories    CategoryResolver
	defaultAuthor string
	log           *slog.Logger
}

// NewPostService returns a PostService backed by the given stores.
func NewPostService(store PostStore, categories CategoryResolver, defaultAuthor string, log *slog.Logger) *PostService {
	return &PostService{
		store:         store,
		categories:    categories,
		defaultAuthor: defaultAuthor,
		log:           log,
	}
}

// List returns every post in storage order.
func (s *PostService) List() ([]models.Post, error) {
	s.log.Info("fetching all posts")
	return s.store.List()
}

// GetByID fetches a single post.
func (s *PostService) GetByID(id int64) (*models.Post, error) {
	s.log.Info("fetching post by id", "id", id)
	p, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("post with id %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// SaveOrUpdate creates the post when no ID is supplied and updates the
// existing one otherwise. Updates overwrite title and description only;
// author and creation time stay untouched. Both branches re-resolve the
// category from the submitted code before anything is written.
func (s *PostService) SaveOrUpdate(submitted *models.Post) (*models.Post, error) {
	var post *models.Post

	if submitted.ID != 0 {
		existing, err := s.store.FindByID(submitted.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("post with id %d: %w", submitted.ID, ErrNotFound)
		}
		existing.Title = submitted.Title
		existing.Description = submitted.Description
		post = existing
	} else {
		post = &models.Post{
			Title:       submitted.Title,
			Description: submitted.Description,
			Author:      s.defaultAuthor,
		}
	}

	category, err := s.categories.FindByCode(submitted.CategoryCode)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category not found for code %s: %w", submitted.CategoryCode, ErrInvalidArgument)
	}
	post.CategoryID = category.ID
	post.CategoryCode = category.Code

	if post.ID != 0 {
		s.log.Info("updating post", "id", post.ID)
		return s.store.Update(post)
	}
	s.log.Info("creating post", "title", post.Title)
	return s.store.Create(post)
}

// Delete removes a post by ID.
func (s *PostService) Delete(id int64) error {
	s.log.Info("deleting post", "id", id)
	found, err := s.store.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("post with id %d: %w", id, ErrNotFound)
	}
	return nil
}

// Recent returns the limit most recently created posts, newest first. The
// limit is not validated; the database applies it as-is.
func (s *PostService) Recent(limit int) ([]models.Post, error) {
	s.log.Info("fetching recent posts", "limit", limit)
	return s.store.Recent(limit)
}
