// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: two sample
// categories and a handful of posts. It is a no-op when any category
// already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	categories := []struct {
		name, code, description, icon string
	}{
		{"Engineering", "seed-engineering", "Notes on building software", "wrench"},
		{"Travel", "seed-travel", "Places and journeys", "globe"},
	}

	categoryIDs := make(map[string]int64)
	for _, c := range categories {
		var id int64
		err := tx.QueryRow(`
			INSERT INTO categories (name, code, description, icon_name)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, c.name, c.code, c.description, c.icon).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.name, err)
		}
		categoryIDs[c.name] = id
	}

	posts := []struct {
		title, description, author, category string
	}{
		{"Hello, World", "The obligatory first post", "Thant Htoo Aung", "Engineering"},
		{"On Error Handling", "Wrapping errors without losing context", "Thant Htoo Aung", "Engineering"},
		{"A Week in Mandalay", "Pagodas and street food", "Thant Htoo Aung", "Travel"},
	}

	for _, p := range posts {
		_, err := tx.Exec(`
			INSERT INTO posts (title, description, author, category_id)
			VALUES ($1, $2, $3, $4)
		`, p.title, p.description, p.author, categoryIDs[p.category])
		if err != nil {
			return fmt.Errorf("seed insert post %s: %w", p.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample categories and posts",
		"categories", len(categories),
		"posts", len(posts),
	)

	return nil
}
