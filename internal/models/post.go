// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post is a blog entry belonging to exactly one category. Content is
// stored but never surfaced through the HTTP layer.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Content      *string    `json:"-"`
	Author       string     `json:"author"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	CategoryID   int64      `json:"-"`
	CategoryCode string     `json:"category_code"`
}

// PostSummary is the trimmed post shape embedded in aggregation views.
type PostSummary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	CategoryCode string  `json:"category_code"`
}

// PostMetadata is a key/value pair attached to a post. The table exists
// for referential integrity; no service or handler exposes it yet.
type PostMetadata struct {
	ID      int64   `json:"id"`
	PostID  int64   `json:"post_id"`
	KeyName string  `json:"key_name"`
	Value   *string `json:"value"`
}

// RecentPost is a one-to-one marker row linking to a post.
type RecentPost struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
}
