package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	UserID    uint    `gorm:"index" json:"userId"`
	User      User    `json:"-"`
	ArticleID uint    `gorm:"index" json:"articleId"`
	Body      string  `gorm:"size:2048" json:"body"`
	Replies   []Reply `json:"replies"`
}

type Reply struct {
	gorm.Model
	UserID    uint   `gorm:"index" json:"userId"`
	User      User   `json:"-"`
	CommentID uint   `gorm:"index" json:"commentId"`
	Body      string `gorm:"size:2048" json:"body"`
}

// CommentResponse pairs a comment with its author projection and replies.
type CommentResponse struct {
	ID        uint    `json:"id"`
	Body      string  `json:"body"`
	Author    Profile `json:"author"`
	Replies   []Reply `json:"replies"`
	CreatedAt string  `json:"createdAt"`
}

func (c *Comment) Response() CommentResponse {
	replies := c.Replies
	if replies == nil {
		replies = []Reply{}
	}
	return CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		Author:    c.User.Profile(),
		Replies:   replies,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
