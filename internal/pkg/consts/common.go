package consts

const (
	MimePrefixImage = "image"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

const (
	AnonymousName = "Anonymous"
)

const (
	MediaFolder = "blog_images"
)

// StatDateLayout DailyStat 的天粒度日期格式
const StatDateLayout = "2006-01-02"
