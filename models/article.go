// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultImageRef is the local fallback image shown when an article has no
// remote image or the remote image cannot be loaded.
const DefaultImageRef = "placeholder_image"

// Article represents a single cached news item owned by a local user.
// It is the persistence model of the "noticias" table.
type Article struct {
	// ID is the locally generated surrogate key of the row.
	// It is stable for the lifetime of the row and is the conflict key
	// for replace-on-insert.
	ID string `json:"id"`

	// UserID is the owner of the article. Every read and write path
	// is scoped by this field.
	UserID int64 `json:"user_id"`

	// Title is the (possibly enriched) headline.
	Title string `json:"title"`

	// Summary is the (possibly enriched) short description.
	Summary string `json:"summary"`

	// SourceURL points to the original article.
	SourceURL string `json:"source_url"`

	// ImageURL is the optional remote image of the article.
	ImageURL *string `json:"image_url,omitempty"`

	// ImageRef is the local fallback image reference.
	ImageRef string `json:"image_ref"`

	// Category is one of the fixed categories or empty when unclassified.
	Category Category `json:"category"`

	// Liked is toggled by the user independently of Saved.
	Liked bool `json:"liked"`

	// Saved is toggled by the user independently of Liked.
	Saved bool `json:"saved"`

	// CreatedAt is the moment the row was built by a sync or seed operation.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "noticias"
}

// ArticleFilter describes a user-scoped article query.
type ArticleFilter struct {
	// UserID is mandatory: queries without an owner are rejected.
	UserID int64

	// Category narrows the result to one label, Uncategorized included.
	// nil or AllCategories disables the filter.
	Category *Category

	// SavedOnly keeps only saved articles.
	SavedOnly bool

	// LikedOnly keeps only liked articles.
	LikedOnly bool

	// Limit caps the result size; zero means no limit.
	Limit uint64
}
