package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.UserFollow{},
		&model.PostDailyStat{},
	)
	require.NoError(t, err)
	return db
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint64, status string) *model.Post {
	post := &model.Post{
		AuthorID: authorID,
		Title:    "hello world",
		Content:  "body",
		Status:   status,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestAddLikeIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostActionRepo(db)
	ctx := context.Background()

	post := seedPost(t, db, 1, "published")

	created, err := repo.AddLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.True(t, created)

	// 重复点赞不计数
	created, err = repo.AddLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.False(t, created)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 1, got.LikesCount)
}

func TestRemoveLikeSyncsCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostActionRepo(db)
	ctx := context.Background()

	post := seedPost(t, db, 1, "published")

	_, err := repo.AddLike(ctx, 10, post.ID)
	require.NoError(t, err)

	deleted, err := repo.RemoveLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// 再删无效果
	deleted, err = repo.RemoveLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 0, got.LikesCount)

	count, err := repo.GetLikeCount(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestLikesAreIndependentPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostActionRepo(db)
	ctx := context.Background()

	post := seedPost(t, db, 1, "published")

	for userID := uint64(10); userID < 13; userID++ {
		created, err := repo.AddLike(ctx, userID, post.ID)
		require.NoError(t, err)
		require.True(t, created)
	}

	count, err := repo.GetLikeCount(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	like, err := repo.GetLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.NotNil(t, like)

	like, err = repo.GetLike(ctx, 99, post.ID)
	require.NoError(t, err)
	require.Nil(t, like)
}
