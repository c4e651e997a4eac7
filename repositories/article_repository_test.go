package repositories

import (
	"testing"

	"blogapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestArticleRepositoryCreateAndFindBySlug(t *testing.T) {
	db := testDB(t)
	repo := NewArticleRepository(db)
	user := seedUser(t, db, "JakeJone")
	seedArticle(t, db, user.ID, "how-to-train-your-dragon")

	found, err := repo.FindBySlug("how-to-train-your-dragon")
	require.NoError(t, err)
	assert.Equal(t, "How to train your dragon", found.Title)
	assert.Len(t, found.TagList, 3)
	// author is preloaded for response shaping
	assert.Equal(t, "JakeJone", found.User.Username)
}

func TestArticleRepositoryFindBySlugMiss(t *testing.T) {
	repo := NewArticleRepository(testDB(t))
	_, err := repo.FindBySlug("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleRepositorySlugExists(t *testing.T) {
	db := testDB(t)
	repo := NewArticleRepository(db)
	user := seedUser(t, db, "JakeJone")
	seedArticle(t, db, user.ID, "how-to-train-your-dragon")

	taken, err := repo.SlugExists("how-to-train-your-dragon")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.SlugExists("something-else")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestArticleRepositoryListPagination(t *testing.T) {
	db := testDB(t)
	repo := NewArticleRepository(db)
	user := seedUser(t, db, "JakeJone")
	slugs := []string{"a-1", "a-2", "a-3", "a-4", "a-5"}
	for _, slug := range slugs {
		seedArticle(t, db, user.ID, slug)
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)

	page, err := repo.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	beyond, err := repo.List(10, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestArticleRepositorySearch(t *testing.T) {
	db := testDB(t)
	repo := NewArticleRepository(db)
	user := seedUser(t, db, "JakeJone")
	seedArticle(t, db, user.ID, "how-to-train-your-dragon")
	other := &models.Article{
		Slug:   "cooking-pasta",
		Title:  "Cooking pasta",
		Body:   "Boil water first",
		UserID: user.ID,
	}
	require.NoError(t, db.Create(other).Error)

	hits, err := repo.Search("dragon", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "how-to-train-your-dragon", hits[0].Slug)

	none, err := repo.Search("kubernetes", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleRepositoryDelete(t *testing.T) {
	db := testDB(t)
	repo := NewArticleRepository(db)
	user := seedUser(t, db, "JakeJone")
	seedArticle(t, db, user.ID, "how-to-train-your-dragon")

	require.NoError(t, repo.Delete("how-to-train-your-dragon"))

	_, err := repo.FindBySlug("how-to-train-your-dragon")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the slug is freed for reuse, not left behind as a tombstone
	taken, err := repo.SlugExists("how-to-train-your-dragon")
	require.NoError(t, err)
	assert.False(t, taken)
	require.NoError(t, repo.Create(&models.Article{
		Slug:   "how-to-train-your-dragon",
		Title:  "How to train your dragon",
		UserID: user.ID,
	}))
}
