package models

import (
	"time"
)

// Author is the byline attached to an article. Authors are shared: many
// articles may carry the same author. Immutable once attached.
type Author struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Article represents an article in the catalog
type Article struct {
	ID         int       `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Author     Author    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ReadTime   int       `json:"read_time"`
	// CommentCount is a denormalized display hint. It is never reconciled
	// with the live comment thread size.
	CommentCount int  `json:"comment_count"`
	Featured     bool `json:"featured,omitempty"`
}

// ValidCategories defines the categories the authoring forms offer
var ValidCategories = map[string]bool{
	"Technology": true,
	"Lifestyle":  true,
	"Health":     true,
	"Business":   true,
	"Culture":    true,
}

// ArticleDraft carries the author-supplied fields for creating or editing
// an article. Slug, id, timestamps and read time are derived server-side.
type ArticleDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}
