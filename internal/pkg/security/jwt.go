package security

import (
	"Inkwell/internal/api/config"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateIdentityToken 校验身份提供方签发的 Token 并解析出 Claims
func ValidateIdentityToken(tokenString string) (*IdentityClaims, error) {
	cfg := config.Cfg.Identity
	claims := &IdentityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer))

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	if claims.Subject == "" {
		return nil, errors.New("token 缺少身份标识")
	}

	return claims, nil
}
