package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

const likeCountTTL = 5 * time.Minute

// 仪表盘汇总时一次最多纳入的文章数
const authorStatScan = 500

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeStatus(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCount(ctx context.Context, postID uint64) (int64, error)
	TrackPostView(ctx context.Context, viewerID, postID uint64) error
	GetPostStats(ctx context.Context, userID, postID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error)
	GetAuthorStats(ctx context.Context, userID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error)
}

type PostActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
	statRepo   repository.DailyStatRepo
	producer   kafka.ViewProducer
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	statRepo repository.DailyStatRepo,
	producer kafka.ViewProducer,
) PostActionService {
	return &PostActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
		statRepo:   statRepo,
		producer:   producer,
	}
}

// ToggleLike 切换点赞状态，返回切换后是否点赞。
// 插入与计数在仓储层同一事务内完成，并发重复请求不会多计。
func (s *PostActionServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrPostNotFound
	}
	if post.Status != consts.PostStatusPublished {
		return false, ErrPostNotPublished
	}

	created, err := s.actionRepo.AddLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	liked := created
	if !created {
		if _, err = s.actionRepo.RemoveLike(ctx, userID, postID); err != nil {
			return false, err
		}
		liked = false
	}

	key := consts.PostLikeKey + strconv.FormatUint(postID, 10)
	if err = redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "like count cache invalidate failed", "key", key, "err", err)
	}
	return liked, nil
}

func (s *PostActionServiceImpl) GetLikeStatus(ctx context.Context, userID, postID uint64) (bool, error) {
	like, err := s.actionRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

func (s *PostActionServiceImpl) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	key := consts.PostLikeKey + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}

	count, err = s.actionRepo.GetLikeCount(ctx, postID)
	if err != nil {
		return 0, err
	}
	if cacheErr := redis.SetWithExpiration(ctx, key, count, likeCountTTL); cacheErr != nil {
		log.WarnContext(ctx, "like count cache write failed", "key", key, "err", cacheErr)
	}
	return count, nil
}

// TrackPostView 记录一次浏览。
// 事件投递 Kafka 异步落库，投递失败降级为直接写库，浏览不丢。
func (s *PostActionServiceImpl) TrackPostView(ctx context.Context, viewerID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Status != consts.PostStatusPublished {
		return ErrPostNotPublished
	}

	now := time.Now()
	event := &kafka.ViewEvent{
		PostID:   postID,
		ViewerID: viewerID,
		ViewedAt: now.UnixMilli(),
	}
	if err = s.producer.SendViewEvent(event); err != nil {
		log.WarnContext(ctx, "view event publish failed, falling back to direct write", "postID", postID, "err", err)
		if err = s.postRepo.IncrementViewCount(ctx, postID); err != nil {
			return err
		}
		return s.statRepo.IncrementView(ctx, postID, now.UTC().Format(consts.StatDateLayout))
	}
	return nil
}

// GetPostStats 获取文章按天统计，仅作者可见
func (s *PostActionServiceImpl) GetPostStats(ctx context.Context, userID, postID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostOwner
	}
	return s.statRepo.GetStats(ctx, postID, fromDate, toDate)
}

// GetAuthorStats 作者仪表盘，汇总其名下所有文章的按天统计
func (s *PostActionServiceImpl) GetAuthorStats(ctx context.Context, userID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID, "", authorStatScan, 0)
	if err != nil {
		return nil, err
	}
	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}
	return s.statRepo.GetStatsByPosts(ctx, postIDs, fromDate, toDate)
}
