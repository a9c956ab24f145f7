package kafka

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}, &model.PostDailyStat{}))
	return db
}

func viewEventMessage(t *testing.T, event *ViewEvent) *sarama.ConsumerMessage {
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Value: payload}
}

func TestViewHandlerAccumulates(t *testing.T) {
	db := setupHandlerDB(t)
	postRepo := repository.NewPostRepo(db)
	statRepo := repository.NewDailyStatRepo(db)
	handler := NewViewsHandler(postRepo, statRepo)
	ctx := context.Background()

	post := &model.Post{AuthorID: 1, Title: "t", Content: "c", Status: "published"}
	require.NoError(t, db.Create(post).Error)

	viewedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	for i := 0; i < 3; i++ {
		msg := viewEventMessage(t, &ViewEvent{PostID: post.ID, ViewerID: 10, ViewedAt: viewedAt})
		require.NoError(t, handler.logic(ctx, msg))
	}

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 3, got.ViewsCount)

	stats, err := statRepo.GetStats(ctx, post.ID, "", "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, "2026-09-01", stats[0].StatDate)
	require.Equal(t, 3, stats[0].Views)
}

func TestViewHandlerSkipsMalformed(t *testing.T) {
	db := setupHandlerDB(t)
	handler := NewViewsHandler(repository.NewPostRepo(db), repository.NewDailyStatRepo(db))

	// 坏消息不报错，直接跳过
	require.NoError(t, handler.logic(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")}))
	require.NoError(t, handler.logic(context.Background(), viewEventMessage(t, &ViewEvent{PostID: 0})))
}
