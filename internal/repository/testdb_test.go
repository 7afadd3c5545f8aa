package repository

import (
	"testing"

	"error_book_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 测试库表结构与 MySQL 迁移结果保持一致，枚举列在 SQLite 下退化为 text
var testSchema = []string{
	`CREATE TABLE users (
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
	)`,
	`CREATE TABLE error_questions (
		id                 varchar(36) PRIMARY KEY,
		created_at         datetime,
		updated_at         datetime,
		user_id            varchar(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject            varchar(50) NOT NULL,
		chapter            varchar(100),
		question_text      text,
		question_image_url text,
		correct_answer     text,
		user_answer        text,
		explanation        text,
		difficulty         text DEFAULT 'medium',
		error_type         text DEFAULT 'other',
		tags               text,
		review_count       integer DEFAULT 0,
		mastery_level      real DEFAULT 0,
		last_reviewed_at   datetime,
		next_review_at     datetime,
		is_archived        bool DEFAULT 0,
		is_favorite        bool DEFAULT 0
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 单连接，保证 PRAGMA 与内存库在所有查询间共享
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed-password",
		Role:         model.RoleStudent,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
