package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostActionRepo interface {
	GetLike(ctx context.Context, userID uint64, postID uint64) (*model.Like, error)
	AddLike(ctx context.Context, userID uint64, postID uint64) (bool, error)
	RemoveLike(ctx context.Context, userID uint64, postID uint64) (bool, error)
	GetLikeCount(ctx context.Context, postID uint64) (int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db: db}
}

// GetLike 查询点赞关系
func (s *PostActionRepoImpl) GetLike(ctx context.Context, userID uint64, postID uint64) (*model.Like, error) {
	var like model.Like
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &like, nil
}

// AddLike 点赞并同步计数。
// 复合主键加 OnConflict DoNothing，并发重复点赞只会计数一次。
func (s *PostActionRepoImpl) AddLike(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			DoNothing: true,
		}).Create(&model.Like{
			UserID: userID,
			PostID: postID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	return created, err
}

// RemoveLike 取消点赞并同步计数
func (s *PostActionRepoImpl) RemoveLike(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		return tx.Model(&model.Post{}).
			Where("id = ? AND likes_count > 0", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
	})
	return deleted, err
}

// GetLikeCount 获取文章点赞数
func (s *PostActionRepoImpl) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
