// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogapi/internal/models"
)

// CategoryStore is the persistence surface the category service depends on.
type CategoryStore interface {
	List() ([]models.Category, error)
	FindByCode(code string) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) (*models.Category, error)
	DeleteByCode(code string) (bool, error)
	CategoriesWithRecentPosts() ([]models.CategoryPostRow, error)
	PostsByCategoryName(name string) ([]models.PostSummary, error)
}

// CategoryService handles the category lifecycle: code generation on
// create, field merging on update, and the two aggregated read views.
type CategoryService struct {
	store CategoryStore
	log   *slog.Logger
}

// NewCategoryService returns a CategoryService backed by the given store.
func NewCategoryService(store CategoryStore, log *slog.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

// List returns every category in storage order.
func (s *CategoryService) List() ([]models.Category, error) {
	s.log.Info("fetching all categories")
	return s.store.List()
}

// GetByCode fetches a single category by its unique code.
func (s *CategoryService) GetByCode(code string) (*models.Category, error) {
	s.log.Info("fetching category by code", "code", code)
	if err := validateCode(code); err != nil {
		return nil, err
	}

	c, err := s.store.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("category with code %s: %w", code, ErrNotFound)
	}
	return c, nil
}

// SaveOrUpdate creates a category when no existing category carries the
// submitted code, and updates the existing one otherwise. On create, any
// caller-supplied code is discarded and a fresh one is generated.
func (s *CategoryService) SaveOrUpdate(c *models.Category) (*models.Category, error) {
	existing, err := s.store.FindByCode(c.Code)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		s.log.Info("creating category", "name", c.Name)
		return s.create(c)
	}
	s.log.Info("updating category", "code", c.Code)
	return s.update(existing, c)
}

func (s *CategoryService) create(c *models.Category) (*models.Category, error) {
	c.Code = generateCode(c.Name)
	if err := validateCategory(c); err != nil {
		return nil, err
	}
	return s.store.Create(c)
}

func (s *CategoryService) update(existing, submitted *models.Category) (*models.Category, error) {
	existing.Name = submitted.Name
	existing.Description = submitted.Description
	existing.IconName = submitted.IconName
	if err := validateCategory(submitted); err != nil {
		return nil, err
	}
	return s.store.Update(existing)
}

// DeleteByCode removes a category by its code. The find-then-delete runs
// in a single transaction inside the store.
func (s *CategoryService) DeleteByCode(code string) error {
	s.log.Info("deleting category", "code", code)
	if err := validateCode(code); err != nil {
		return err
	}

	found, err := s.store.DeleteByCode(code)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("category with code %s: %w", code, ErrNotFound)
	}
	return nil
}

// ListWithRecentPosts returns every category, each paired with up to its 3
// most recent posts. Categories without posts appear with an empty post
// list. The per-category cap and the row ordering come from the query; the
// grouping here only preserves them.
func (s *CategoryService) ListWithRecentPosts() ([]models.CategoryPosts, error) {
	rows, err := s.store.CategoriesWithRecentPosts()
	if err != nil {
		return nil, err
	}
	return groupPostsByCategory(rows), nil
}

// PostsByCategoryName returns the named category together with ALL its
// posts, newest first. Unlike ListWithRecentPosts there is no 3-post cap.
// A category with zero posts yields ErrNotFound, as does an unknown name.
func (s *CategoryService) PostsByCategoryName(name string) (*models.CategoryPosts, error) {
	if strings.TrimSpace(name) == "" {
		s.log.Error("invalid category name", "name", name)
		return nil, fmt.Errorf("category name must be non-blank: %w", ErrInvalidArgument)
	}

	posts, err := s.store.PostsByCategoryName(name)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		s.log.Warn("no posts found for category", "name", name)
		return nil, fmt.Errorf("no posts for category %s: %w", name, ErrNotFound)
	}

	category, err := s.store.FindByName(name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", name, ErrNotFound)
	}

	return &models.CategoryPosts{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IconName:    category.IconName,
		Posts:       posts,
	}, nil
}

// groupPostsByCategory folds flat join rows into one CategoryPosts per
// category, keyed by first appearance so the row stream's category order
// survives. Within a category, posts keep the row order.
func groupPostsByCategory(rows []models.CategoryPostRow) []models.CategoryPosts {
	index := make(map[int64]int)
	grouped := []models.CategoryPosts{}

	for _, row := range rows {
		i, seen := index[row.CategoryID]
		if !seen {
			grouped = append(grouped, models.CategoryPosts{
				ID:          row.CategoryID,
				Name:        row.Name,
				Description: row.Description,
				IconName:    row.IconName,
				Posts:       []models.PostSummary{},
			})
			i = len(grouped) - 1
			index[row.CategoryID] = i
		}

		if row.PostID != nil {
			var title string
			if row.PostTitle != nil {
				title = *row.PostTitle
			}
			grouped[i].Posts = append(grouped[i].Posts, models.PostSummary{
				ID:           *row.PostID,
				Title:        title,
				Description:  row.PostDescription,
				CategoryCode: row.Code,
			})
		}
	}

	return grouped
}

// generateCode derives a practically unique category code: the category
// name concatenated with the current wall-clock millis is hashed with
// SHA-256, hex-encoded, and the hex text re-encoded as URL-safe Base64.
// Two creates with the same name in the same millisecond collide.
func generateCode(name string) string {
	base := name + strconv.FormatInt(time.Now().UnixMilli(), 10)
	sum := sha256.Sum256([]byte(base))
	digest := hex.EncodeToString(sum[:])
	return base64.URLEncoding.EncodeToString([]byte(digest))
}

// validateCategory checks the fields a category must carry before hitting
// the database.
func validateCategory(c *models.Category) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.By(notBlank), validation.Length(0, 255)),
	)
	if err != nil {
		return fmt.Errorf("category name is required: %w", ErrInvalidArgument)
	}
	return nil
}

// validateCode rejects blank identifier codes before any lookup happens.
func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("category code must be non-blank: %w", ErrInvalidArgument)
	}
	return nil
}

// notBlank is an ozzo rule that rejects whitespace-only strings, which
// validation.Required alone lets through.
func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}
