package dto

// CreateCommentReq 创建评论请求。
// AuthorName、AuthorEmail 仅匿名评论时生效。
type CreateCommentReq struct {
	PostID      uint64 `json:"postId" binding:"required"`
	AuthorName  string `json:"authorName" binding:"omitempty,max=100"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email,max=255"`
	Content     string `json:"content" binding:"required,max=2000"`
}

// ModerateCommentReq 审核评论请求
type ModerateCommentReq struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
