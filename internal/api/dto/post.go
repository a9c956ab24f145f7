package dto

import "time"

// CreatePostReq 创建文章请求
type CreatePostReq struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"omitempty,max=500"`
	CoverImageURL string   `json:"coverImageUrl" binding:"omitempty,max=512"`
	Category      string   `json:"category" binding:"omitempty,max=100"`
	Tags          []string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
	Publish       bool     `json:"publish"`
}

// UpdatePostReq 更新文章请求，指针字段区分"未提交"和"清空"
type UpdatePostReq struct {
	Title         *string   `json:"title" binding:"omitempty,max=255"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt" binding:"omitempty,max=500"`
	CoverImageURL *string   `json:"coverImageUrl" binding:"omitempty,max=512"`
	Category      *string   `json:"category" binding:"omitempty,max=100"`
	Tags          *[]string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
}

// SchedulePostReq 定时发布请求
type SchedulePostReq struct {
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

// PostResp 文章响应
type PostResp struct {
	ID            uint64     `json:"id"`
	AuthorID      uint64     `json:"authorId"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	CoverImageURL string     `json:"coverImageUrl"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	ViewsCount    int        `json:"viewsCount"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
