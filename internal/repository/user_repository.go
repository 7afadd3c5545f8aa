package repository

import (
	"errors"
	"strings"
	"time"

	"error_book_backend/internal/model"
	"error_book_backend/internal/util"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create 直接插入，用户名/邮箱/手机号唯一性由数据库约束保证，
// 唯一键冲突翻译为 AlreadyExists。
func (r *UserRepository) Create(user *model.User) error {
	if err := r.DB.Create(user).Error; err != nil {
		if appErr := TranslateDuplicateKey(err); appErr != nil {
			return appErr
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	return &user, err
}

// FindByUsernameOrEmail 登录入口，同一标识先按用户名再按邮箱匹配
func (r *UserRepository) FindByUsernameOrEmail(identifier string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID string) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login_at", now).
		Error
}

func (r *UserRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.User{}).Error
}

// TranslateDuplicateKey 将 MySQL 1062（唯一键冲突）翻译为 AlreadyExists，
// 根据冲突的索引名选择提示信息。非冲突错误返回 nil。
func TranslateDuplicateKey(err error) *util.AppError {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return nil
	}

	msg := mysqlErr.Message
	switch {
	case strings.Contains(msg, "username"):
		return util.NewAlreadyExists("用户名已存在")
	case strings.Contains(msg, "email"):
		return util.NewAlreadyExists("邮箱已被注册")
	case strings.Contains(msg, "phone"):
		return util.NewAlreadyExists("手机号已被注册")
	}
	return util.NewAlreadyExists("")
}
