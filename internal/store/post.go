// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"blogapi/internal/models"
)

// PostStore manages posts in the database. Every read joins categories so
// the owning category code travels with the post.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `p.id, p.title, p.description, p.content, p.author,
	       p.created_at, p.updated_at, p.category_id, c.code`

// scanPost scans a joined posts/categories row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Description, &p.Content, &p.Author,
		&p.CreatedAt, &p.UpdatedAt, &p.CategoryID, &p.CategoryCode,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts in insertion order.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + `
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by ID. Returns nil if not found.
func (s *PostStore) FindByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with server-assigned fields.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	row := s.db.QueryRow(`
		WITH inserted AS (
			INSERT INTO posts (title, description, content, author, category_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT `+postColumns+`
		FROM inserted p
		JOIN categories c ON c.id = p.category_id
	`, p.Title, p.Description, p.Content, p.Author, p.CategoryID)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update overwrites title, description, and category of an existing post.
// Author and created_at are never touched.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	row := s.db.QueryRow(`
		WITH updated AS (
			UPDATE posts SET
				title = $1, description = $2, category_id = $3, updated_at = now()
			WHERE id = $4
			RETURNING *
		)
		SELECT `+postColumns+`
		FROM updated p
		JOIN categories c ON c.id = p.category_id
	`, p.Title, p.Description, p.CategoryID, p.ID)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return result, nil
}

// Delete removes a post by ID. Returns false when no post had the given ID.
func (s *PostStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return affected > 0, nil
}

// Recent returns posts ordered by creation time descending, truncated to
// limit rows. The limit is passed straight to the database.
func (s *PostStore) Recent(limit int) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
