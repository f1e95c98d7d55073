package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryExists = errors.New("category already exists")

// PostSummary is the lightweight post view embedded in category listings.
type PostSummary struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Published bool         `json:"published"`
	Author    *UserSummary `json:"author,omitempty"`
}

// Category groups posts. Mutation is admin-only.
type Category struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Posts       []PostSummary `json:"posts,omitempty"`
}
