package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userRepo repository.UserRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userRepo)
	authOpt := middleware.AuthOptionalMiddleware(userRepo)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:user_id/profile", group.UserHandler.GetUserByID)
			userGroup.GET("/by-username/:username", group.UserHandler.GetUserByUsername)
			userGroup.GET("/:user_id/followers", group.UserFollowHandler.GetUserFollowers)
			userGroup.GET("/:user_id/followers/count", group.UserFollowHandler.GetUserFollowersCount)
			userGroup.GET("/:user_id/followings", group.UserFollowHandler.GetUserFollowings)
			userGroup.GET("/:user_id/followings/count", group.UserFollowHandler.GetUserFollowingCount)

			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("/sync", group.UserHandler.Sync)
				authGroup.GET("/me", group.UserHandler.GetMe)
				authGroup.PUT("/me", group.UserHandler.UpdateProfile)
				authGroup.GET("/isfollow/:following_id", group.UserFollowHandler.GetSomeoneIsFollowing)
				authGroup.POST("/follow/:following_id", group.UserFollowHandler.ToggleFollow)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(authOpt)
			{
				authOptGroup.GET("", group.PostHandler.ListPublished)
				authOptGroup.GET("/search", group.PostHandler.SearchPost)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/list/:user_id", group.PostHandler.ListByAuthor)
				authOptGroup.GET("/state/:post_id", group.PostActionHandler.GetLikeState)
				authOptGroup.POST("/view/:post_id", group.PostActionHandler.TrackView)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/publish", group.PostHandler.PublishPost)
				authGroup.POST("/:post_id/schedule", group.PostHandler.SchedulePost)
				authGroup.GET("/self", group.PostHandler.ListSelf)
				authGroup.GET("/feed", group.PostHandler.ListFeed)
				authGroup.POST("/likes/:post_id", group.PostActionHandler.ToggleLike)
				authGroup.GET("/:post_id/stats", group.PostActionHandler.GetStats)
			authGroup.GET("/stats", group.PostActionHandler.GetAuthorStats)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			authOptGroup := commentGroup.Group("")
			authOptGroup.Use(authOpt)
			{
				authOptGroup.POST("", group.CommentHandler.CreateComment)
				authOptGroup.GET("/list/:post_id", group.CommentHandler.ListComments)
			}

			authGroup := commentGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.GET("/pending", group.CommentHandler.ListPending)
				authGroup.PUT("/:comment_id/status", group.CommentHandler.ModerateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		aiGroup := apiGroup.Group("/ai")
		aiGroup.Use(auth)
		{
			aiGroup.POST("/generate", group.AIHandler.GenerateArticle)
			aiGroup.POST("/improve", group.AIHandler.ImproveArticle)
			aiGroup.GET("/history", group.AIHandler.GetHistory)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("/upload", group.MediaHandler.UploadImage)
		}
	}

	return r
}
