package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ctxArticlePayload = "articlePayload"

// ArticleInput is the client-supplied article body, nested under an
// "article" key on the wire.
type ArticleInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
	ImageURL    string   `json:"imageUrl"`
	IsPaidFor   bool     `json:"isPaidFor"`
	Price       float64  `json:"price"`
}

type articleForm struct {
	Article *ArticleInput `json:"article"`
}

// ValidateArticle rejects payloads missing the article key or any of the
// required text fields, and parks the parsed input on the context so the
// handler does not have to re-read the request body.
func ValidateArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form articleForm
		if err := c.ShouldBindJSON(&form); err != nil || form.Article == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": gin.H{"body": []string{"Please provide an article object in your request"}},
			})
			return
		}
		if form.Article.Title == "" || form.Article.Description == "" || form.Article.Body == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": gin.H{"body": []string{"Please check that your title, description or body field is not empty"}},
			})
			return
		}
		c.Set(ctxArticlePayload, form.Article)
		c.Next()
	}
}

// ValidatePrice enforces the paywall pricing rules: a paid article must carry
// a price, and the price must fall strictly between 0.28 and 5.53.
func ValidatePrice() gin.HandlerFunc {
	return func(c *gin.Context) {
		input := ArticlePayload(c)
		if input == nil {
			c.Next()
			return
		}
		if input.IsPaidFor && input.Price == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": gin.H{"body": []string{"Article is to be paid for, but price is not set"}},
			})
			return
		}
		if input.Price != 0 && (input.Price <= 0.28 || input.Price >= 5.53) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": gin.H{"body": []string{"Price can only be between $0.28 to $5.53"}},
			})
			return
		}
		c.Next()
	}
}

func ArticlePayload(c *gin.Context) *ArticleInput {
	if v, ok := c.Get(ctxArticlePayload); ok {
		if input, ok := v.(*ArticleInput); ok {
			return input
		}
	}
	return nil
}
