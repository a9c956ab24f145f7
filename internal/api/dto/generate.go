package dto

// GenerateArticleReq 按标题生成文章请求
type GenerateArticleReq struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Category string   `json:"category" binding:"omitempty,max=100"`
	Tags     []string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
}

// ImproveArticleReq 润色文章请求，mode 缺省为 enhance
type ImproveArticleReq struct {
	Content string `json:"content" binding:"required"`
	Mode    string `json:"mode" binding:"omitempty,oneof=enhance expand simplify"`
}

// GenerationResp 生成结果
type GenerationResp struct {
	Content   string `json:"content"`
	Model     string `json:"model"`
	LatencyMs int64  `json:"latencyMs"`
}
