package model

import (
	"time"
)

type Post struct {
	ID            uint64     `gorm:"primaryKey"`
	AuthorID      uint64     `gorm:"not null;index:idx_author_id" json:"authorId"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Content       string     `gorm:"not null" json:"content"`
	Excerpt       string     `gorm:"type:varchar(500)" json:"excerpt"`
	CoverImageURL string     `gorm:"type:varchar(512)" json:"coverImageUrl"`
	Category      string     `gorm:"type:varchar(100);index:idx_category" json:"category"`
	Tags          []string   `gorm:"type:json;serializer:json" json:"tags"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft';index:idx_status" json:"status"`
	LikesCount    int        `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int        `gorm:"not null;default:0" json:"commentsCount"`
	ViewsCount    int        `gorm:"not null;default:0" json:"viewsCount"`
	PublishedAt   *time.Time `gorm:"index:idx_published_at" json:"publishedAt"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
