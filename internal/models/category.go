// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persistent entities and read views of the
// blogging platform.
package models

import "time"

// Category is a named grouping for posts. It is identified externally by
// Code, an opaque string generated by the category service at creation
// time and immutable afterwards.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description *string    `json:"description"`
	IconName    *string    `json:"icon_name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// CategoryPosts is an aggregation view pairing a category with an ordered
// list of its post summaries. It is assembled on read and never persisted.
type CategoryPosts struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	IconName    *string       `json:"icon_name"`
	Posts       []PostSummary `json:"posts"`
}

// CategoryPostRow is one flat row of the categories-with-posts join.
// Post columns are nil for categories without any posts.
type CategoryPostRow struct {
	CategoryID      int64
	Name            string
	Description     *string
	IconName        *string
	Code            string
	PostID          *int64
	PostTitle       *string
	PostDescription *string
}
