package controllers

import (
	"net/http"
	"strconv"

	"blogapp/middlewares"
	"blogapp/repositories"
	"blogapp/services"

	"github.com/gin-gonic/gin"
)

type LikeController struct {
	likes    *services.LikeService
	articles repositories.ArticleRepository
}

func NewLikeController(likes *services.LikeService, articles repositories.ArticleRepository) *LikeController {
	return &LikeController{likes: likes, articles: articles}
}

// Toggle flips the caller's like on the article: 201 when the like was
// created, 200 when it was removed. The returned count is recomputed from
// the likes table on every call.
func (lc *LikeController) Toggle(c *gin.Context) {
	article := middlewares.ArticleFromContext(c)
	userID := middlewares.CurrentUserID(c)

	liked, likes, err := lc.likes.Toggle(userID, article.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	message := "You have unliked this article"
	if liked {
		status = http.StatusCreated
		message = "Successfully liked the article"
	}
	c.JSON(status, gin.H{
		"success": true,
		"liked":   liked,
		"likes":   likes,
		"message": message,
	})
}

// Likes reports the current like count for the article.
func (lc *LikeController) Likes(c *gin.Context) {
	article := middlewares.ArticleFromContext(c)

	likes, err := lc.likes.Count(article.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// Top returns the most liked articles from the ranking cache, joined with
// their titles.
func (lc *LikeController) Top(c *gin.Context) {
	top, err := strconv.Atoi(c.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	ranked, err := lc.likes.Top(top)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	list := make([]gin.H, 0, len(ranked))
	for _, entry := range ranked {
		item := gin.H{
			"id":    entry.ArticleID,
			"likes": entry.Likes,
			"rank":  entry.Rank,
		}
		// Title lookup is best-effort: a deleted article keeps its slot
		// until the score decays out of the top.
		if article, err := lc.articles.FindByID(entry.ArticleID); err == nil {
			item["title"] = article.Title
			item["slug"] = article.Slug
		}
		list = append(list, item)
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
