package repositories

import (
	"blogapp/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Find(userID, articleID uint) (*models.Like, error)
	Create(like *models.Like) error
	Delete(like *models.Like) error
	CountByArticle(articleID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(userID, articleID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(like *models.Like) error {
	// Unscoped so a later re-like can insert the same (user, article) pair
	// without tripping the unique index on a soft-deleted row.
	return r.db.Unscoped().Delete(like).Error
}

func (r *likeRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
