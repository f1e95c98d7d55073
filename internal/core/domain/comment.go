package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to a post. A non-empty ParentID marks it as a reply; only a
// single level of nesting is surfaced by listings.
type Comment struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	AuthorID  string       `json:"author_id"`
	PostID    string       `json:"post_id"`
	ParentID  string       `json:"parent_id,omitempty"`
	Author    *UserSummary `json:"author,omitempty"`
	Replies   []*Comment   `json:"replies,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
