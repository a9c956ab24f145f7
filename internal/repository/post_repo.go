package repository

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, updates map[string]interface{}) error
	DeletePost(ctx context.Context, id uint64) error
	ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID uint64, status string, limit, offset int) ([]*model.Post, error)
	ListFeed(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error)
	GetDueScheduled(ctx context.Context, now time.Time) ([]*model.Post, error)
	MarkPublished(ctx context.Context, id uint64, publishedAt time.Time) (bool, error)
	IncrementViewCount(ctx context.Context, id uint64) error
	AdjustCommentCount(ctx context.Context, id uint64, delta int) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost 创建文章
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// GetPostByID 按主键获取文章
func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	result := s.db.WithContext(ctx).First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// UpdatePost 更新文章字段
func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeletePost 删除文章及其关联数据
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostDailyStat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// ListPublished 获取已发布文章列表，按发布时间倒序
func (s *PostRepoImpl) ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Where("status = ?", consts.PostStatusPublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.
		Order("published_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListByAuthor 获取作者的文章列表
func (s *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, status string, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Where("author_id = ?", authorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	result := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListFeed 获取一批作者的已发布文章，按发布时间倒序
func (s *PostRepoImpl) ListFeed(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error) {
	if len(authorIDs) == 0 {
		return []*model.Post{}, nil
	}
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("author_id IN ? AND status = ?", authorIDs, consts.PostStatusPublished).
		Order("published_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetDueScheduled 获取已到定时发布时间的草稿
func (s *PostRepoImpl) GetDueScheduled(ctx context.Context, now time.Time) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", consts.PostStatusDraft, now).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// MarkPublished 条件更新为已发布状态。
// 带状态条件，重复发布或并发发布不会覆盖已有的发布时间。
func (s *PostRepoImpl) MarkPublished(ctx context.Context, id uint64, publishedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND status = ?", id, consts.PostStatusDraft).
		Updates(map[string]interface{}{
			"status":       consts.PostStatusPublished,
			"published_at": publishedAt,
			"scheduled_at": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementViewCount 阅读量原子加一
func (s *PostRepoImpl) IncrementViewCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// AdjustCommentCount 评论数原子增减
func (s *PostRepoImpl) AdjustCommentCount(ctx context.Context, id uint64, delta int) error {
	if delta >= 0 {
		return s.db.WithContext(ctx).
			Model(&model.Post{}).
			Where("id = ?", id).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", delta)).Error
	}
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND comments_count >= ?", id, -delta).
		UpdateColumn("comments_count", gorm.Expr("comments_count - ?", -delta)).Error
}
