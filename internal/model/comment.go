package model

import (
	"time"
)

type Comment struct {
	ID          uint64    `gorm:"primaryKey"`
	PostID      uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	AuthorID    *uint64   `gorm:"index:idx_author_id" json:"authorId"` // nil 表示匿名评论
	AuthorName  string    `gorm:"type:varchar(100);not null" json:"authorName"`
	AuthorEmail *string   `gorm:"type:varchar(255)" json:"authorEmail,omitempty"`
	Content     string    `gorm:"type:varchar(2000);not null" json:"content"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_status" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
