package repositories

import (
	"blogapp/models"

	"gorm.io/gorm"
)

// ArticleRepository is the persistence port for articles. Lookups that miss
// return gorm.ErrRecordNotFound.
type ArticleRepository interface {
	Create(article *models.Article) error
	FindBySlug(slug string) (*models.Article, error)
	FindByID(id uint) (*models.Article, error)
	List(offset, limit int) ([]models.Article, error)
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	Search(term string, limit int) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(slug string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Preload("User").Order("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) Search(term string, limit int) ([]models.Article, error) {
	var articles []models.Article
	pattern := "%" + term + "%"
	query := r.db.Preload("User").
		Where("title LIKE ? OR description LIKE ? OR body LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(slug string) error {
	// Unscoped so the hard unique index on slug does not keep a tombstone
	// that would reject a later article with the same title.
	return r.db.Unscoped().Where("slug = ?", slug).Delete(&models.Article{}).Error
}
