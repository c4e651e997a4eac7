package repositories

import (
	"testing"

	"blogapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepositoryListByArticleWithReplies(t *testing.T) {
	db := testDB(t)
	repo := NewCommentRepository(db)
	author := seedUser(t, db, "JakeJone")
	reader := seedUser(t, db, "JakeJoneII")
	article := seedArticle(t, db, author.ID, "how-to-train-your-dragon")

	comment := &models.Comment{UserID: reader.ID, ArticleID: article.ID, Body: "Great read"}
	require.NoError(t, repo.Create(comment))
	require.NoError(t, repo.CreateReply(&models.Reply{
		UserID:    author.ID,
		CommentID: comment.ID,
		Body:      "Thanks!",
	}))

	comments, err := repo.ListByArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Great read", comments[0].Body)
	assert.Equal(t, "JakeJoneII", comments[0].User.Username)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "Thanks!", comments[0].Replies[0].Body)
}

func TestCommentRepositoryDeleteIfExists(t *testing.T) {
	db := testDB(t)
	repo := NewCommentRepository(db)
	author := seedUser(t, db, "JakeJone")
	article := seedArticle(t, db, author.ID, "how-to-train-your-dragon")

	comment := &models.Comment{UserID: author.ID, ArticleID: article.ID, Body: "self comment"}
	require.NoError(t, repo.Create(comment))
	require.NoError(t, repo.Delete(comment.ID))

	comments, err := repo.ListByArticle(article.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// deleting an id that never existed is still fine
	assert.NoError(t, repo.Delete(9999))
}
