package model

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Username     string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        *string `gorm:"size:20;uniqueIndex" json:"phone,omitempty"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`

	// 个人信息
	Nickname  string `gorm:"size:50" json:"nickname"`
	Bio       string `gorm:"size:500" json:"bio"`
	AvatarURL string `gorm:"size:500" json:"avatar_url"`

	// 角色与状态
	Role       UserRole `gorm:"type:enum('student','teacher','admin');default:'student';index" json:"role"`
	IsActive   bool     `gorm:"default:true" json:"is_active"`
	IsVerified bool     `gorm:"default:false" json:"is_verified"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// 级联关系：删除用户时一并删除其错题与练习记录
	ErrorQuestions  []ErrorQuestion  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PracticeRecords []PracticeRecord `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
