package api

import (
	"Inkwell/internal/api/handler"
)

// HandlersGroup 汇总所有 HTTP Handler
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	UserFollowHandler *handler.UserFollowHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	CommentHandler    *handler.CommentHandler
	AIHandler         *handler.AIHandler
	MediaHandler      *handler.MediaHandler
}
