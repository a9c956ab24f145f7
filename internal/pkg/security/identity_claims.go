package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims 身份提供方在 Token 中断言的用户属性。
// Subject 即 token identifier，除此之外均为可选声明。
type IdentityClaims struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Username  string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// TokenIdentifier 身份唯一标识
func (c *IdentityClaims) TokenIdentifier() string {
	return c.Subject
}
