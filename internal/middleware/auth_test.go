package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"error_book_backend/internal/config"
	"error_book_backend/internal/model"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserLoader struct {
	users map[string]*model.User
}

func (s *stubUserLoader) FindByID(id string) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func newAuthTestRouter(cfg *config.Config, loader *stubUserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg, loader), func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		util.Success(c, "", gin.H{"user_id": user.ID})
	})
	return router
}

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.AccessExpireTime = 30 * time.Minute
	cfg.JWT.RefreshExpireTime = 7 * 24 * time.Hour
	return cfg
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	cfg := authTestConfig()

	activeUser := &model.User{
		UUIDBase: model.UUIDBase{ID: "user-001"},
		Username: "zhangsan",
		Email:    "zhangsan@example.com",
		Role:     model.RoleStudent,
		IsActive: true,
	}
	disabledUser := &model.User{
		UUIDBase: model.UUIDBase{ID: "user-002"},
		Username: "lisi",
		IsActive: false,
	}
	loader := &stubUserLoader{users: map[string]*model.User{
		activeUser.ID:   activeUser,
		disabledUser.ID: disabledUser,
	}}
	router := newAuthTestRouter(cfg, loader)

	accessToken, err := util.GenerateAccessToken(activeUser, cfg.JWT.Secret, cfg.JWT.AccessExpireTime)
	require.NoError(t, err)
	refreshToken, err := util.GenerateRefreshToken(activeUser, cfg.JWT.Secret, cfg.JWT.RefreshExpireTime)
	require.NoError(t, err)
	expiredToken, err := util.GenerateAccessToken(activeUser, cfg.JWT.Secret, -time.Minute)
	require.NoError(t, err)
	disabledToken, err := util.GenerateAccessToken(disabledUser, cfg.JWT.Secret, cfg.JWT.AccessExpireTime)
	require.NoError(t, err)
	ghostUser := &model.User{UUIDBase: model.UUIDBase{ID: "user-999"}}
	ghostToken, err := util.GenerateAccessToken(ghostUser, cfg.JWT.Secret, cfg.JWT.AccessExpireTime)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{"有效访问令牌放行", "Bearer " + accessToken, http.StatusOK, ""},
		{"缺少认证头", "", http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{"刷新令牌不能访问受保护资源", "Bearer " + refreshToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"过期令牌", "Bearer " + expiredToken, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"伪造令牌", "Bearer not.a.token", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"用户不存在", "Bearer " + ghostToken, http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{"用户已被禁用", "Bearer " + disabledToken, http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, w.Body.Bytes()))
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       model.UserRole
		required   model.UserRole
		wantStatus int
	}{
		{"角色匹配放行", model.RoleTeacher, model.RoleTeacher, http.StatusOK},
		{"管理员越过角色限制", model.RoleAdmin, model.RoleTeacher, http.StatusOK},
		{"角色不符返回 403", model.RoleStudent, model.RoleTeacher, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/admin-only",
				func(c *gin.Context) {
					c.Set("current_user", &model.User{
						UUIDBase: model.UUIDBase{ID: "user-001"},
						Role:     tt.role,
						IsActive: true,
					})
				},
				RoleMiddleware(tt.required),
				func(c *gin.Context) { util.Success(c, "", nil) },
			)

			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
