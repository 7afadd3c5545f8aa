package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"error_book_backend/internal/model"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDuplicateKey(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			"用户名冲突",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'zhangsan' for key 'users.idx_users_username'"},
			"用户名已存在",
		},
		{
			"邮箱冲突",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'users.idx_users_email'"},
			"邮箱已被注册",
		},
		{
			"手机号冲突",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '138' for key 'users.idx_users_phone'"},
			"手机号已被注册",
		},
		{
			"未知唯一键冲突",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'users.idx_other'"},
			"资源已存在",
		},
		{
			"包装后的冲突错误",
			fmt.Errorf("create user: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'users.idx_users_email'"}),
			"邮箱已被注册",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := TranslateDuplicateKey(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusConflict, appErr.Status)
			assert.Equal(t, "ALREADY_EXISTS", appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}

func TestTranslateDuplicateKeyIgnoresOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"普通错误", errors.New("connection refused")},
		{"非 1062 的 MySQL 错误", &mysql.MySQLError{Number: 1045, Message: "Access denied"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, TranslateDuplicateKey(tt.err))
		})
	}
}

func TestFindByUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	created := seedUser(t, db, "zhangsan", "zhangsan@example.com")

	tests := []struct {
		name       string
		identifier string
	}{
		{"按用户名查找", "zhangsan"},
		{"按邮箱查找", "zhangsan@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.FindByUsernameOrEmail(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, created.ID, user.ID)
			assert.Equal(t, "zhangsan", user.Username)
			assert.Equal(t, "zhangsan@example.com", user.Email)
		})
	}

	t.Run("未知标识返回 ErrRecordNotFound", func(t *testing.T) {
		_, err := repo.FindByUsernameOrEmail("nobody")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeleteUserCascadesErrorQuestions(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	questions := NewErrorQuestionRepository(db)

	alice := seedUser(t, db, "alice", "alice@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	for _, subject := range []string{"数学", "物理"} {
		require.NoError(t, questions.Create(&model.ErrorQuestion{
			UserID:     alice.ID,
			Subject:    subject,
			Difficulty: model.DifficultyMedium,
			ErrorType:  model.ErrorTypeOther,
		}))
	}
	require.NoError(t, questions.Create(&model.ErrorQuestion{
		UserID:     bob.ID,
		Subject:    "英语",
		Difficulty: model.DifficultyMedium,
		ErrorType:  model.ErrorTypeOther,
	}))

	require.NoError(t, users.Delete(alice.ID))

	_, err := users.FindByID(alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 级联：用户删除后其错题一并删除，他人数据不受影响
	count, err := questions.CountByUser(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = questions.CountByUser(bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
