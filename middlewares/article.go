package middlewares

import (
	"errors"
	"net/http"
	"strconv"

	"blogapp/models"
	"blogapp/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ctxArticle = "articleObject"
	ctxComment = "commentObject"
)

// ArticleExists resolves the :slug parameter into an article (author
// preloaded) and attaches it to the context, or ends the request with a 404.
func ArticleExists(articles repositories.ArticleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		article, err := articles.FindBySlug(slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"success": false,
					"errors":  gin.H{"body": []string{"The article does not exist"}},
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(ctxArticle, article)
		c.Next()
	}
}

// CheckCount rejects edits once the article has hit the edit ceiling. The
// edit handler trusts this gate and always increments.
func CheckCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		article := ArticleFromContext(c)
		if article != nil && article.UpdatedCount >= models.MaxUpdatedCount {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"errors":  gin.H{"body": []string{"You have exceeded your edit limit for this article"}},
			})
			return
		}
		c.Next()
	}
}

// CommentExists resolves the :id parameter into a comment for the reply path.
func CommentExists(comments repositories.CommentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": gin.H{"body": []string{"Comment id must be a number"}},
			})
			return
		}
		comment, err := comments.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"success": false,
					"errors":  gin.H{"body": []string{"The comment does not exist"}},
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(ctxComment, comment)
		c.Next()
	}
}

func ArticleFromContext(c *gin.Context) *models.Article {
	if v, ok := c.Get(ctxArticle); ok {
		if article, ok := v.(*models.Article); ok {
			return article
		}
	}
	return nil
}

func CommentFromContext(c *gin.Context) *models.Comment {
	if v, ok := c.Get(ctxComment); ok {
		if comment, ok := v.(*models.Comment); ok {
			return comment
		}
	}
	return nil
}
