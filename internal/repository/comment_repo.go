package repository

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	ListApprovedByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)
	ListPendingByPosts(ctx context.Context, postIDs []uint64, limit, offset int) ([]*model.Comment, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// CreateComment 创建评论
func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentByID 按主键获取评论
func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

// ListApprovedByPost 获取文章下已通过的评论，时间正序
func (s *CommentRepoImpl) ListApprovedByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, consts.CommentStatusApproved).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// ListByPost 获取文章下全部评论，供作者审核视图使用
func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// ListPendingByPosts 获取一批文章下待审核的评论
func (s *CommentRepoImpl) ListPendingByPosts(ctx context.Context, postIDs []uint64, limit, offset int) ([]*model.Comment, error) {
	if len(postIDs) == 0 {
		return []*model.Comment{}, nil
	}
	var comments []*model.Comment
	result := s.db.WithContext(ctx).
		Where("post_id IN ? AND status = ?", postIDs, consts.CommentStatusPending).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// UpdateStatus 更新评论审核状态
func (s *CommentRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// DeleteComment 删除评论
func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}
