package models

import (
	"time"
)

// Comment represents one comment in an article's thread. A nil ParentID
// marks a root comment; Replies holds the direct children in insertion
// order, nested to arbitrary depth.
type Comment struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	ArticleID int        `json:"article_id"`
	CreatedAt time.Time  `json:"created_at"`
	ParentID  *int       `json:"parent_id,omitempty"`
	Likes     int        `json:"likes"`
	Replies   []*Comment `json:"replies"`
}

// IsRoot reports whether the comment anchors a thread.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
