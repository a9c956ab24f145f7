package kafka

// ViewEvent 一次文章浏览事件
type ViewEvent struct {
	PostID   uint64 `json:"post_id"`
	ViewerID uint64 `json:"viewer_id,omitempty"`
	ViewedAt int64  `json:"viewed_at"`
}
