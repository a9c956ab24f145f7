package middleware

import (
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxUserIDKey, uint64(0))

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateIdentityToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.GetUserByTokenIdentifier(c.Request.Context(), claims.TokenIdentifier())
		if err == nil && user != nil {
			c.Set(CtxUserIDKey, user.ID)
			newCtx := context.WithValue(c.Request.Context(), CtxUserIDKey, user.ID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
