package controllers

import (
	"log"
	"net/http"
	"strconv"

	"blogapp/middlewares"
	"blogapp/models"
	"blogapp/repositories"
	"blogapp/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	notifier services.Notifier
}

func NewCommentController(
	comments repositories.CommentRepository,
	users repositories.UserRepository,
	notifier services.Notifier,
) *CommentController {
	return &CommentController{comments: comments, users: users, notifier: notifier}
}

type commentInput struct {
	Body string `json:"body"`
}

type commentForm struct {
	Comment *commentInput `json:"comment"`
}

// validateComment collects every problem with the payload so the client gets
// an itemized list rather than the first failure.
func validateComment(c *gin.Context) (*commentInput, []string) {
	var form commentForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Comment == nil {
		return nil, []string{"Please provide a comment object in your request"}
	}
	if form.Comment.Body == "" {
		return nil, []string{"Comment body cannot be empty"}
	}
	return form.Comment, nil
}

// CreateComment persists a comment on the resolved article and notifies the
// article's author. Notification failure never rolls back the comment.
func (cc *CommentController) CreateComment(c *gin.Context) {
	input, problems := validateComment(c)
	if problems != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"errors":  gin.H{"body": problems},
		})
		return
	}

	article := middlewares.ArticleFromContext(c)
	userID := middlewares.CurrentUserID(c)

	user, err := cc.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		UserID:    userID,
		ArticleID: article.ID,
		Body:      input.Body,
	}
	if err := cc.comments.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"errors":  gin.H{"body": []string{err.Error()}},
		})
		return
	}

	if err := cc.notifier.Publish(services.Notification{
		Kind:        "comment",
		Recipient:   article.User.Email,
		Name:        article.User.Username,
		ArticleSlug: article.Slug,
		Body:        comment.Body,
	}); err != nil {
		log.Printf("comment notification publish failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"comment": comment,
		"user":    user.Profile(),
		"article": article.Response(),
	})
}

// CreateReply persists a reply under the resolved comment and notifies the
// comment's author.
func (cc *CommentController) CreateReply(c *gin.Context) {
	input, problems := validateComment(c)
	if problems != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"errors":  gin.H{"body": problems},
		})
		return
	}

	comment := middlewares.CommentFromContext(c)
	userID := middlewares.CurrentUserID(c)

	user, err := cc.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reply := models.Reply{
		UserID:    userID,
		CommentID: comment.ID,
		Body:      input.Body,
	}
	if err := cc.comments.CreateReply(&reply); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"errors":  gin.H{"body": []string{err.Error()}},
		})
		return
	}

	article := middlewares.ArticleFromContext(c)
	if err := cc.notifier.Publish(services.Notification{
		Kind:        "reply",
		Recipient:   comment.User.Email,
		Name:        comment.User.Username,
		ArticleSlug: article.Slug,
		Body:        reply.Body,
	}); err != nil {
		log.Printf("reply notification publish failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"reply":   reply,
		"user":    user.Profile(),
		"comment": comment.Response(),
	})
}

// GetComments returns every comment on the article with author projection and
// nested replies.
func (cc *CommentController) GetComments(c *gin.Context) {
	article := middlewares.ArticleFromContext(c)

	comments, err := cc.comments.ListByArticle(article.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].Response())
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"article":  article.Response(),
		"comments": responses,
	})
}

// DeleteComment removes a comment by id; deleting an id that no longer
// exists still reports success.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": gin.H{"body": []string{"Comment id must be a number"}},
		})
		return
	}

	if err := cc.comments.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": gin.H{"body": []string{"Comment deleted successfully"}},
	})
}
