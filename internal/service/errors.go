// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service implements the business rules for categories and posts.
// Services sit between the HTTP handlers and the stores: they validate
// input, resolve references, and assemble read views.
package service

import "errors"

// Sentinel errors for the two client-visible failure classes. Handlers map
// them to HTTP status codes with errors.Is; everything else is a server
// failure.
var (
	// ErrNotFound means the requested category or post has no matching row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means the caller supplied a blank identifying key,
	// a blank category name, or a reference to a non-existent category.
	ErrInvalidArgument = errors.New("invalid argument")
)
