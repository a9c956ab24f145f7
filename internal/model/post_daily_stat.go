package model

import (
	"time"
)

type PostDailyStat struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_date,unique" json:"postId"`
	StatDate  string    `gorm:"type:varchar(10);not null;index:idx_post_date,unique;column:stat_date" json:"statDate"`
	Views     int       `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostDailyStat) TableName() string {
	return "post_daily_stats"
}
