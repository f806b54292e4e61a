package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB gives the repository a real SQL engine for behavior that
// sqlmock cannot exercise, such as concurrent writes.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive and serializes
	// writers at the pool, avoiding SQLITE_BUSY under concurrency.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.PostCategory{},
		&models.Comment{},
	))
	return db
}

func TestPostRepository_IncrementViews_Concurrent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := &models.User{Username: "johndoe", Email: "john@example.com", Password: "hashed"}
	require.NoError(t, db.Create(author).Error)
	post := &models.Post{Title: "First Post", Slug: "first-post", Content: "Hello", AuthorID: author.ID, Views: 40}
	require.NoError(t, db.Create(post).Error)

	const readers = 10
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementViews(ctx, post.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, int64(50), got.Views, "every fetch is counted, none lost")
}

func TestPostRepository_ListPublished_NewestCreatedFirst(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := &models.User{Username: "janedoe", Email: "jane@example.com", Password: "hashed"}
	require.NoError(t, db.Create(author).Error)

	// The older post was published more recently; creation time still wins.
	now := time.Now()
	older := now.Add(-2 * time.Hour)
	newer := now.Add(-1 * time.Hour)
	first := &models.Post{
		Title: "Older Post", Slug: "older-post", Content: "a", AuthorID: author.ID,
		IsPublished: true, PublishedAt: &now, CreatedAt: older,
	}
	second := &models.Post{
		Title: "Newer Post", Slug: "newer-post", Content: "b", AuthorID: author.ID,
		IsPublished: true, PublishedAt: &older, CreatedAt: newer,
	}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	posts, total, err := repo.ListPublished(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer-post", posts[0].Slug)
	assert.Equal(t, "older-post", posts[1].Slug)
}
