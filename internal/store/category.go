// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the data access layer. Each aggregate gets its own
// store struct over *sql.DB with explicit parameterized queries; lookups
// return (nil, nil) when no row matches.
package store

import (
	"database/sql"
	"fmt"

	"blogapi/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, code, description, icon_name, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Code, &c.Description,
		&c.IconName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories in insertion order.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByCode retrieves a category by its unique code. Returns nil if not found.
func (s *CategoryStore) FindByCode(code string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE code = $1`, code)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by code: %w", err)
	}
	return c, nil
}

// FindByName retrieves a category by name. Returns nil if not found.
// Names are expected, but not enforced, to be unique; the first match wins.
func (s *CategoryStore) FindByName(name string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE name = $1 ORDER BY id LIMIT 1`, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it with server-assigned fields.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name, code, description, icon_name)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		c.Name, c.Code, c.Description, c.IconName,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category and returns the stored row.
// Code and created_at are never touched.
func (s *CategoryStore) Update(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		UPDATE categories SET
			name = $1, description = $2, icon_name = $3, updated_at = now()
		WHERE id = $4
		RETURNING `+categoryColumns,
		c.Name, c.Description, c.IconName, c.ID,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return result, nil
}

// DeleteByCode removes a category by code inside a transaction, so the
// existence check and the delete observe the same state. Returns false
// when no category has the given code.
func (s *CategoryStore) DeleteByCode(code string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`SELECT id FROM categories WHERE code = $1 FOR UPDATE`, code).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find category for delete: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete: %w", err)
	}
	return true, nil
}

// CategoriesWithRecentPosts returns one row per (category, post) pair with
// at most the 3 newest posts per category. Categories without posts produce
// a single row with NULL post columns. Row order drives the grouping in the
// service layer: categories by name, posts newest-first within a category.
func (s *CategoryStore) CategoriesWithRecentPosts() ([]models.CategoryPostRow, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, icon_name, code,
		       post_id, post_title, post_description
		FROM (
			SELECT c.id, c.name, c.description, c.icon_name, c.code,
			       p.id AS post_id, p.title AS post_title,
			       p.description AS post_description, p.created_at AS post_created_at,
			       ROW_NUMBER() OVER (PARTITION BY c.id ORDER BY p.created_at DESC) AS rn
			FROM categories c
			LEFT JOIN posts p ON p.category_id = c.id
		) ranked
		WHERE rn <= 3
		ORDER BY name, post_created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("categories with recent posts: %w", err)
	}
	defer rows.Close()

	var items []models.CategoryPostRow
	for rows.Next() {
		var r models.CategoryPostRow
		err := rows.Scan(
			&r.CategoryID, &r.Name, &r.Description, &r.IconName, &r.Code,
			&r.PostID, &r.PostTitle, &r.PostDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category post row: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// PostsByCategoryName returns every post of the named category as summaries,
// newest first. No cap is applied here, unlike CategoriesWithRecentPosts.
func (s *CategoryStore) PostsByCategoryName(name string) ([]models.PostSummary, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.description, c.code
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE c.name = $1
		ORDER BY p.created_at DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("posts by category name: %w", err)
	}
	defer rows.Close()

	var items []models.PostSummary
	for rows.Next() {
		var p models.PostSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CategoryCode); err != nil {
			return nil, fmt.Errorf("scan post summary: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
