package service

import (
	"testing"
	"time"

	"error_book_backend/internal/config"
	"error_book_backend/internal/repository"
	"error_book_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const authUsersSchema = `CREATE TABLE users (
	id            varchar(36) PRIMARY KEY,
	created_at    datetime,
	updated_at    datetime,
	username      varchar(50) NOT NULL UNIQUE,
	email         varchar(100) NOT NULL UNIQUE,
	phone         varchar(20) UNIQUE,
	password_hash varchar(255) NOT NULL,
	nickname      varchar(50),
	bio           varchar(500),
	avatar_url    varchar(500),
	role          text DEFAULT 'student',
	is_active     bool DEFAULT 1,
	is_verified   bool DEFAULT 0,
	last_login_at datetime
)`

func newAuthTestService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(authUsersSchema).Error)

	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-service-test-secret"
	cfg.JWT.AccessExpireTime = 30 * time.Minute
	cfg.JWT.RefreshExpireTime = 7 * 24 * time.Hour

	return NewAuthService(repository.NewUserRepository(db), cfg), db
}

func TestLoginWithUsernameOrEmail(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Register("zhangsan", "zhangsan@example.com", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
	}{
		{"用户名登录", "zhangsan"},
		{"邮箱登录", "zhangsan@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := svc.Login(tt.identifier, "secret123")
			require.NoError(t, err)
			assert.Equal(t, "bearer", pair.TokenType)
			assert.Equal(t, 1800, pair.ExpiresIn)

			claims, err := util.ParseToken(pair.AccessToken, svc.Cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, util.TokenTypeAccess, claims.TokenType)

			claims, err = util.ParseToken(pair.RefreshToken, svc.Cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, util.TokenTypeRefresh, claims.TokenType)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Register("zhangsan", "zhangsan@example.com", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{"密码错误", "zhangsan", "wrong-password"},
		{"用户不存在", "nobody", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.identifier, tt.password)
			require.Error(t, err)

			appErr, ok := err.(*util.AppError)
			require.True(t, ok)
			assert.Equal(t, 401, appErr.Status)
			// 不区分用户不存在与密码错误
			assert.Equal(t, "用户名或密码错误", appErr.Message)
		})
	}
}

func TestLoginSucceedsWhenLastLoginUpdateFails(t *testing.T) {
	svc, db := newAuthTestService(t)

	_, err := svc.Register("zhangsan", "zhangsan@example.com", "secret123")
	require.NoError(t, err)

	// 阻断登录时间写入，登录本身不应受影响
	require.NoError(t, db.Exec(`CREATE TRIGGER block_last_login
		BEFORE UPDATE OF last_login_at ON users
		BEGIN SELECT RAISE(ABORT, 'last_login locked'); END`).Error)

	pair, err := svc.Login("zhangsan", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshReissuesTokenPair(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Register("zhangsan", "zhangsan@example.com", "secret123")
	require.NoError(t, err)

	pair, err := svc.Login("zhangsan", "secret123")
	require.NoError(t, err)

	renewed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.NotEmpty(t, renewed.RefreshToken)

	t.Run("访问令牌不能用于刷新", func(t *testing.T) {
		_, err := svc.Refresh(pair.AccessToken)
		require.Error(t, err)

		appErr, ok := err.(*util.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_TOKEN", appErr.Code)
	})
}
