package util

import (
	"errors"
	"time"

	"error_book_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    string         `json:"user_id"`
	Role      model.UserRole `json:"role"`
	Email     string         `json:"email"`
	TokenType string         `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken 签发短期访问令牌
func GenerateAccessToken(user *model.User, secret string, expiration time.Duration) (string, error) {
	return generateToken(user, secret, expiration, TokenTypeAccess)
}

// GenerateRefreshToken 签发长期刷新令牌
func GenerateRefreshToken(user *model.User, secret string, expiration time.Duration) (string, error) {
	return generateToken(user, secret, expiration, TokenTypeRefresh)
}

func generateToken(user *model.User, secret string, expiration time.Duration, tokenType string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:    user.ID,
		Role:      user.Role,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken 校验签名与有效期。过期返回 TokenExpired，
// 其余任何解析失败（格式错误、签名不符）返回 InvalidToken。
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewTokenExpired()
		}
		return nil, NewInvalidToken()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, NewInvalidToken()
	}

	return claims, nil
}

// GetUserFromContext 获取认证中间件解析出的当前用户
func GetUserFromContext(c *gin.Context) *model.User {
	v, exists := c.Get("current_user")
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
