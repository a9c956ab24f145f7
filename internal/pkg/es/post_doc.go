package es

// PostDoc 帖子在索引中的文档结构
type PostDoc struct {
	ID          uint64   `json:"id"`
	AuthorID    uint64   `json:"author_id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category,omitempty"`
	PublishedAt int64    `json:"published_at"`
}
