package models

import "gorm.io/gorm"

// Like records that a user liked an article. Absence of a row means
// "not liked"; the composite unique index keeps a create/create race from
// producing duplicates.
type Like struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex:idx_likes_user_article" json:"userId"`
	ArticleID uint `gorm:"uniqueIndex:idx_likes_user_article" json:"articleId"`
}
