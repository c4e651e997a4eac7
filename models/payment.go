package models

import "gorm.io/gorm"

// Payment is the purchase record gating paid articles: a matching
// (user, article) row grants read access.
type Payment struct {
	gorm.Model
	UserID    uint    `gorm:"uniqueIndex:idx_payments_user_article" json:"userId"`
	ArticleID uint    `gorm:"uniqueIndex:idx_payments_user_article" json:"articleId"`
	Amount    float64 `gorm:"type:decimal(10,2)" json:"amount"`
	Reference string  `json:"reference"`
}
