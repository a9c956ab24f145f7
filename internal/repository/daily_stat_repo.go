package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyStatRepo interface {
	IncrementView(ctx context.Context, postID uint64, statDate string) error
	GetStats(ctx context.Context, postID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error)
	GetStatsByPosts(ctx context.Context, postIDs []uint64, fromDate, toDate string) ([]*model.PostDailyStat, error)
}

type DailyStatRepoImpl struct {
	db *gorm.DB
}

func NewDailyStatRepo(db *gorm.DB) DailyStatRepo {
	return &DailyStatRepoImpl{db: db}
}

// IncrementView 按天聚合阅读量。
// (post_id, stat_date) 唯一索引加 upsert，同一天的并发写只会累加。
func (s *DailyStatRepoImpl) IncrementView(ctx context.Context, postID uint64, statDate string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "post_id"}, {Name: "stat_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"views": gorm.Expr("views + 1"),
			}),
		}).
		Create(&model.PostDailyStat{
			PostID:   postID,
			StatDate: statDate,
			Views:    1,
		}).Error
}

// GetStats 获取单篇文章的按天统计
func (s *DailyStatRepoImpl) GetStats(ctx context.Context, postID uint64, fromDate, toDate string) ([]*model.PostDailyStat, error) {
	var stats []*model.PostDailyStat
	query := s.db.WithContext(ctx).
		Where("post_id = ?", postID)
	if fromDate != "" {
		query = query.Where("stat_date >= ?", fromDate)
	}
	if toDate != "" {
		query = query.Where("stat_date <= ?", toDate)
	}
	result := query.Order("stat_date asc").Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return stats, nil
}

// GetStatsByPosts 获取一批文章的按天统计，供作者仪表盘使用
func (s *DailyStatRepoImpl) GetStatsByPosts(ctx context.Context, postIDs []uint64, fromDate, toDate string) ([]*model.PostDailyStat, error) {
	if len(postIDs) == 0 {
		return []*model.PostDailyStat{}, nil
	}
	var stats []*model.PostDailyStat
	query := s.db.WithContext(ctx).
		Where("post_id IN ?", postIDs)
	if fromDate != "" {
		query = query.Where("stat_date >= ?", fromDate)
	}
	if toDate != "" {
		query = query.Where("stat_date <= ?", toDate)
	}
	result := query.Order("stat_date asc").Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return stats, nil
}
