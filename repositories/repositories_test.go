package repositories

import (
	"testing"

	"blogapp/config"
	"blogapp/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2b$10$vBox3ssr3T9b2YHsMbg64eciZWkWId/VvddxSEG3Be63x.MvzBUgO",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArticle(t *testing.T, db *gorm.DB, userID uint, slug string) *models.Article {
	t.Helper()
	article := &models.Article{
		Slug:        slug,
		Title:       "How to train your dragon",
		Description: "Ever wonder how?",
		Body:        "You have to believe",
		TagList:     []string{"reactjs", "angularjs", "dragons"},
		UserID:      userID,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}
