package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/es"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const (
	DefaultPageSize = 20
	MaxTitleLength  = 255
	MaxTagCount     = 10
)

type PostService interface {
	CreatePost(ctx context.Context, post *model.Post, publishNow bool) (*model.Post, error)
	GetPostByID(ctx context.Context, viewerID uint64, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, userID uint64, id uint64, updates map[string]interface{}) error
	DeletePost(ctx context.Context, userID uint64, id uint64) error
	PublishPost(ctx context.Context, userID uint64, id uint64) (*model.Post, error)
	SchedulePost(ctx context.Context, userID uint64, id uint64, at time.Time) error
	ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, viewerID, authorID uint64, status string, limit, offset int) ([]*model.Post, error)
	ListFeed(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error)
	SearchPosts(ctx context.Context, keyword string, from, size int) ([]*model.Post, error)
	PublishDueScheduled(ctx context.Context, now time.Time) (int, error)
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	followRepo repository.UserFollowRepo
	postESRepo es.PostRepo
}

func NewPostService(postRepo repository.PostRepo, followRepo repository.UserFollowRepo, postESRepo es.PostRepo) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		followRepo: followRepo,
		postESRepo: postESRepo,
	}
}

// CreatePost 创建文章，publishNow 为真时直接进入已发布状态
func (s *PostServiceImpl) CreatePost(ctx context.Context, post *model.Post, publishNow bool) (*model.Post, error) {
	if post.Title == "" || len(post.Title) > MaxTitleLength || post.Content == "" {
		return nil, ErrParamInvalid
	}
	if len(post.Tags) > MaxTagCount {
		return nil, ErrParamInvalid
	}

	post.Status = consts.PostStatusDraft
	post.PublishedAt = nil
	if publishNow {
		now := time.Now()
		post.Status = consts.PostStatusPublished
		post.PublishedAt = &now
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	if publishNow {
		s.indexPost(ctx, post)
	}
	return post, nil
}

// GetPostByID 获取文章详情。
// 草稿只有作者本人可见。
func (s *PostServiceImpl) GetPostByID(ctx context.Context, viewerID uint64, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Status != consts.PostStatusPublished && post.AuthorID != viewerID {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// UpdatePost 更新文章内容，仅作者可操作。
// 标题和正文不允许被改空，与创建时的校验保持一致。
func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, id uint64, updates map[string]interface{}) error {
	if title, ok := updates["title"].(string); ok {
		if title == "" || len(title) > MaxTitleLength {
			return ErrParamInvalid
		}
	}
	if content, ok := updates["content"].(string); ok && content == "" {
		return ErrParamInvalid
	}

	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	if err = s.postRepo.UpdatePost(ctx, id, updates); err != nil {
		return err
	}

	// 已发布文章内容变更后同步索引
	if post.Status == consts.PostStatusPublished {
		updated, fetchErr := s.postRepo.GetPostByID(ctx, id)
		if fetchErr == nil && updated != nil {
			s.indexPost(ctx, updated)
		}
	}
	return nil
}

// DeletePost 删除文章及其关联数据，仅作者可操作。
// 封面图与搜索索引一并清理，清理失败不阻塞删除。
func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, id uint64) error {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return err
	}
	if err = s.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}
	if err = s.postESRepo.DeletePost(ctx, id); err != nil {
		log.WarnContext(ctx, "post index delete failed", "postID", id, "err", err)
	}
	if key := minio.ObjectKeyFromURL(post.CoverImageURL); key != "" {
		if err = minio.DeleteFile(ctx, key); err != nil {
			log.WarnContext(ctx, "cover image delete failed", "postID", id, "objectKey", key, "err", err)
		}
	}
	return nil
}

// PublishPost 发布草稿。
// 仓储层条件更新保证重复发布不会覆盖首次发布时间。
func (s *PostServiceImpl) PublishPost(ctx context.Context, userID uint64, id uint64) (*model.Post, error) {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if post.Status == consts.PostStatusPublished {
		return nil, ErrPostAlreadyLive
	}

	now := time.Now()
	published, err := s.postRepo.MarkPublished(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, ErrPostAlreadyLive
	}

	post.Status = consts.PostStatusPublished
	post.PublishedAt = &now
	post.ScheduledAt = nil
	s.indexPost(ctx, post)
	return post, nil
}

// SchedulePost 设置草稿的定时发布时间
func (s *PostServiceImpl) SchedulePost(ctx context.Context, userID uint64, id uint64, at time.Time) error {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return err
	}
	if post.Status == consts.PostStatusPublished {
		return ErrPostAlreadyLive
	}
	if !at.After(time.Now()) {
		return ErrScheduleInPast
	}
	return s.postRepo.UpdatePost(ctx, id, map[string]interface{}{
		"scheduled_at": at,
	})
}

func (s *PostServiceImpl) ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.Post, error) {
	limit, offset = normalizePage(limit, offset)
	return s.postRepo.ListPublished(ctx, category, limit, offset)
}

// ListByAuthor 获取作者文章列表。
// 非本人只能看到已发布的部分。
func (s *PostServiceImpl) ListByAuthor(ctx context.Context, viewerID, authorID uint64, status string, limit, offset int) ([]*model.Post, error) {
	limit, offset = normalizePage(limit, offset)
	if viewerID != authorID {
		status = consts.PostStatusPublished
	}
	return s.postRepo.ListByAuthor(ctx, authorID, status, limit, offset)
}

// ListFeed 关注流，按发布时间倒序
func (s *PostServiceImpl) ListFeed(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	limit, offset = normalizePage(limit, offset)
	authorIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListFeed(ctx, authorIDs, limit, offset)
}

// SearchPosts 全文检索已发布文章
func (s *PostServiceImpl) SearchPosts(ctx context.Context, keyword string, from, size int) ([]*model.Post, error) {
	if keyword == "" {
		return nil, ErrParamInvalid
	}
	size, from = normalizePage(size, from)

	docs, err := s.postESRepo.SearchPosts(ctx, keyword, from, size)
	if err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(docs))
	for _, doc := range docs {
		post, fetchErr := s.postRepo.GetPostByID(ctx, doc.ID)
		if fetchErr != nil || post == nil || post.Status != consts.PostStatusPublished {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// PublishDueScheduled 发布所有到期的定时文章，返回成功发布数量
func (s *PostServiceImpl) PublishDueScheduled(ctx context.Context, now time.Time) (int, error) {
	due, err := s.postRepo.GetDueScheduled(ctx, now)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, post := range due {
		ok, markErr := s.postRepo.MarkPublished(ctx, post.ID, now)
		if markErr != nil {
			log.ErrorContext(ctx, "scheduled publish failed", "postID", post.ID, "err", markErr)
			continue
		}
		if !ok {
			continue
		}
		post.Status = consts.PostStatusPublished
		post.PublishedAt = &now
		s.indexPost(ctx, post)
		published++
	}
	return published, nil
}

func (s *PostServiceImpl) ownedPost(ctx context.Context, userID uint64, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}

// indexPost 写入搜索索引，失败只记日志不阻塞主流程
func (s *PostServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	doc := &es.PostDoc{
		ID:       post.ID,
		AuthorID: post.AuthorID,
		Title:    post.Title,
		Content:  post.Content,
		Tags:     post.Tags,
		Category: post.Category,
	}
	if post.PublishedAt != nil {
		doc.PublishedAt = post.PublishedAt.UnixMilli()
	}
	if err := s.postESRepo.IndexPost(ctx, doc); err != nil {
		log.WarnContext(ctx, "post index write failed", "postID", post.ID, "err", err)
	}
}

// normalizePage 为非HTTP调用方补默认值，上限校验在接口层完成
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
