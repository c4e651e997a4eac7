package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxUpdatedCount is the edit ceiling: once an article has been updated this
// many times, further edits are rejected.
const MaxUpdatedCount = 3

type Article struct {
	gorm.Model
	Slug         string   `gorm:"uniqueIndex;size:255" json:"slug"`
	Title        string   `json:"title"`
	Description  string   `gorm:"size:2048" json:"description"`
	Body         string   `gorm:"size:65535" json:"body"`
	TagList      []string `gorm:"serializer:json" json:"tagList"`
	ImageURL     string   `json:"imageUrl"`
	IsPaidFor    bool     `json:"isPaidFor"`
	Price        float64  `gorm:"type:decimal(10,2)" json:"price"`
	ReadTime     int      `json:"readTime"`
	UpdatedCount int      `json:"updatedCount"`
	UserID       uint     `gorm:"index" json:"-"`
	User         User     `json:"-"`
	Likes        []Like   `json:"-"`
}

// ArticleResponse is the wire shape for a single article: the owning user is
// flattened into a public author projection, internal ids stay out.
type ArticleResponse struct {
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Body         string    `json:"body"`
	TagList      []string  `json:"tagList"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsPaidFor    bool      `json:"isPaidFor"`
	Price        float64   `json:"price,omitempty"`
	ReadTime     int       `json:"readTime"`
	UpdatedCount int       `json:"updatedCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Author       Profile   `json:"author"`
}

func (a *Article) Response() ArticleResponse {
	return ArticleResponse{
		Slug:         a.Slug,
		Title:        a.Title,
		Description:  a.Description,
		Body:         a.Body,
		TagList:      a.TagList,
		ImageURL:     a.ImageURL,
		IsPaidFor:    a.IsPaidFor,
		Price:        a.Price,
		ReadTime:     a.ReadTime,
		UpdatedCount: a.UpdatedCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Author:       a.User.Profile(),
	}
}
