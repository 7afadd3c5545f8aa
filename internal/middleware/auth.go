package middleware

import (
	"strings"

	"error_book_backend/internal/config"
	"error_book_backend/internal/model"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserLoader 按 ID 加载用户，由用户仓储实现
type UserLoader interface {
	FindByID(id string) (*model.User, error)
}

// AuthMiddleware 解析 Bearer Token 并加载当前用户。
// 每次请求都查库，令牌签发后的禁用立即生效。
func AuthMiddleware(cfg *config.Config, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Fail(c, util.NewAuthenticationError("缺少认证信息"))
			c.Abort()
			return
		}

		claims, err := util.ParseToken(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Fail(c, err)
			c.Abort()
			return
		}

		// 刷新令牌不能用于访问受保护资源
		if claims.TokenType != util.TokenTypeAccess {
			util.Fail(c, util.NewInvalidToken())
			c.Abort()
			return
		}

		if claims.UserID == "" {
			util.Fail(c, util.NewAuthenticationError("Token 中缺少用户信息"))
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			util.Fail(c, util.NewAuthenticationError("用户不存在"))
			c.Abort()
			return
		}

		if !user.IsActive {
			util.Fail(c, util.NewAuthenticationError("用户已被禁用"))
			c.Abort()
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}

// RoleMiddleware 角色校验，管理员拥有全部权限
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Fail(c, util.NewAuthenticationError(""))
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.RoleAdmin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Fail(c, util.NewPermissionDenied(""))
			c.Abort()
			return
		}
		c.Next()
	}
}
