package repositories

import (
	"blogapp/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Find(userID, articleID uint) (*models.Payment, error)
	Create(payment *models.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Find(userID, articleID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}
