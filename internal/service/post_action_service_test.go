package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeViewProducer 记录事件，可注入失败
type fakeViewProducer struct {
	events []*kafka.ViewEvent
	fail   bool
}

func (f *fakeViewProducer) SendViewEvent(event *kafka.ViewEvent) error {
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeViewProducer) Close() error { return nil }

func newActionService(db *gorm.DB, producer kafka.ViewProducer) PostActionService {
	return NewPostActionService(
		repository.NewPostActionRepo(db),
		repository.NewPostRepo(db),
		repository.NewDailyStatRepo(db),
		producer,
	)
}

func TestToggleLikeFlipsState(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newActionService(db, &fakeViewProducer{})
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)

	liked, err := svc.ToggleLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	status, err := svc.GetLikeStatus(ctx, 10, post.ID)
	require.NoError(t, err)
	require.True(t, status)

	liked, err = svc.ToggleLike(ctx, 10, post.ID)
	require.NoError(t, err)
	require.False(t, liked)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 0, got.LikesCount)
}

func TestToggleLikeRequiresPublishedPost(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newActionService(db, &fakeViewProducer{})
	ctx := context.Background()

	draft := &model.Post{AuthorID: 1, Title: "d", Content: "c", Status: consts.PostStatusDraft}
	require.NoError(t, db.Create(draft).Error)

	_, err := svc.ToggleLike(ctx, 10, draft.ID)
	require.ErrorIs(t, err, ErrPostNotPublished)

	_, err = svc.ToggleLike(ctx, 10, 9999)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestTrackPostViewPublishesEvent(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	producer := &fakeViewProducer{}
	svc := newActionService(db, producer)
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)

	require.NoError(t, svc.TrackPostView(ctx, 10, post.ID))
	require.Len(t, producer.events, 1)
	require.Equal(t, post.ID, producer.events[0].PostID)

	// 事件路径不直接写库
	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 0, got.ViewsCount)
}

func TestTrackPostViewFallsBackOnProducerFailure(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newActionService(db, &fakeViewProducer{fail: true})
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)

	require.NoError(t, svc.TrackPostView(ctx, 10, post.ID))

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 1, got.ViewsCount)

	stats, err := repository.NewDailyStatRepo(db).GetStats(ctx, post.ID, "", "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, 1, stats[0].Views)
}

func TestGetAuthorStatsCoversAllPosts(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newActionService(db, &fakeViewProducer{})
	ctx := context.Background()

	first := seedPublishedPost(t, db, 1)
	second := seedPublishedPost(t, db, 1)
	other := seedPublishedPost(t, db, 2)

	statRepo := repository.NewDailyStatRepo(db)
	require.NoError(t, statRepo.IncrementView(ctx, first.ID, "2026-09-01"))
	require.NoError(t, statRepo.IncrementView(ctx, second.ID, "2026-09-02"))
	require.NoError(t, statRepo.IncrementView(ctx, other.ID, "2026-09-01"))

	stats, err := svc.GetAuthorStats(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	for _, stat := range stats {
		require.NotEqual(t, other.ID, stat.PostID)
	}

	// 日期范围过滤
	stats, err = svc.GetAuthorStats(ctx, 1, "2026-09-02", "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, second.ID, stats[0].PostID)
}

func TestGetPostStatsOwnerOnly(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newActionService(db, &fakeViewProducer{})
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)
	statRepo := repository.NewDailyStatRepo(db)
	require.NoError(t, statRepo.IncrementView(ctx, post.ID, "2026-09-01"))

	stats, err := svc.GetPostStats(ctx, 1, post.ID, "", "")
	require.NoError(t, err)
	require.Len(t, stats, 1)

	_, err = svc.GetPostStats(ctx, 2, post.ID, "", "")
	require.ErrorIs(t, err, ErrNotPostOwner)
}
