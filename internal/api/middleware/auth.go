package middleware

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserIDKey = "user_id"
	CtxClaimsKey = "identity_claims"
)

// AuthMiddleware 验证身份令牌并注入本地用户。
// 令牌有效但本地用户尚未同步时 user_id 为 0，同步接口依赖这一点。
func AuthMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateIdentityToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxClaimsKey, claims)

		user, err := userRepo.GetUserByTokenIdentifier(c.Request.Context(), claims.TokenIdentifier())
		if err != nil {
			response.Fail(c, response.InternalServerError, "unexpected error")
			c.Abort()
			return
		}

		var userID uint64
		if user != nil {
			userID = user.ID
		}
		c.Set(CtxUserIDKey, userID)

		newCtx := context.WithValue(c.Request.Context(), CtxUserIDKey, userID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
