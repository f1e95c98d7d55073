package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Tag is a unique label attached to posts. Tags are created lazily
// (get-or-create by name) and never garbage-collected when they become unused.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is an article written by a user. The author reference is set at
// creation time and immutable thereafter.
type Post struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Published  bool         `json:"published"`
	AuthorID   string       `json:"author_id"`
	CategoryID string       `json:"category_id,omitempty"`
	TagIDs     []string     `json:"-"`
	Author     *UserSummary `json:"author,omitempty"`
	Category   *Category    `json:"category,omitempty"`
	Tags       []Tag        `json:"tags"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
