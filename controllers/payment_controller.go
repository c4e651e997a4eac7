package controllers

import (
	"errors"
	"net/http"

	"blogapp/middlewares"
	"blogapp/models"
	"blogapp/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentController struct {
	payments repositories.PaymentRepository
}

func NewPaymentController(payments repositories.PaymentRepository) *PaymentController {
	return &PaymentController{payments: payments}
}

// Purchase records a payment for a paid article, unlocking it for the caller.
// Buying an article twice is a no-op.
func (pc *PaymentController) Purchase(c *gin.Context) {
	article := middlewares.ArticleFromContext(c)
	userID := middlewares.CurrentUserID(c)

	if !article.IsPaidFor {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": gin.H{"body": []string{"This article is free to read"}},
		})
		return
	}

	existing, err := pc.payments.Find(userID, article.ID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "You have already purchased this article",
			"payment": existing,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payment := models.Payment{
		UserID:    userID,
		ArticleID: article.ID,
		Amount:    article.Price,
		Reference: uuid.NewString(),
	}
	if err := pc.payments.Create(&payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}
