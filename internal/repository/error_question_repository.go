package repository

import (
	"error_book_backend/internal/model"

	"gorm.io/gorm"
)

// sortableColumns 可排序字段白名单，API 字段名映射到列名
var sortableColumns = map[string]string{
	"created_at":       "created_at",
	"updated_at":       "updated_at",
	"subject":          "subject",
	"difficulty":       "difficulty",
	"error_type":       "error_type",
	"review_count":     "review_count",
	"mastery_level":    "mastery_level",
	"last_reviewed_at": "last_reviewed_at",
	"next_review_at":   "next_review_at",
}

// SortColumn 校验排序字段，未知字段返回 false
func SortColumn(field string) (string, bool) {
	col, ok := sortableColumns[field]
	return col, ok
}

// ErrorQuestionFilter 列表筛选条件，零值字段不参与过滤
type ErrorQuestionFilter struct {
	UserID     string
	Subject    string
	Difficulty string
	ErrorType  string
	IsFavorite *bool
	IsArchived *bool

	SortBy    string // 已通过 SortColumn 校验的列名
	SortOrder string // asc / desc

	Page     int
	PageSize int
}

type ErrorQuestionRepository struct {
	DB *gorm.DB
}

func NewErrorQuestionRepository(db *gorm.DB) *ErrorQuestionRepository {
	return &ErrorQuestionRepository{DB: db}
}

func (r *ErrorQuestionRepository) Create(question *model.ErrorQuestion) error {
	return r.DB.Create(question).Error
}

// FindByIDAndUser 按 (id, user_id) 查找，越权访问与不存在同样返回 ErrRecordNotFound
func (r *ErrorQuestionRepository) FindByIDAndUser(id, userID string) (*model.ErrorQuestion, error) {
	var question model.ErrorQuestion
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&question).Error
	return &question, err
}

// List 筛选、排序、分页，返回当前页与总条数
func (r *ErrorQuestionRepository) List(filter ErrorQuestionFilter) ([]model.ErrorQuestion, int64, error) {
	query := r.DB.Model(&model.ErrorQuestion{}).Where("user_id = ?", filter.UserID)

	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.ErrorType != "" {
		query = query.Where("error_type = ?", filter.ErrorType)
	}
	if filter.IsFavorite != nil {
		query = query.Where("is_favorite = ?", *filter.IsFavorite)
	}
	if filter.IsArchived != nil {
		query = query.Where("is_archived = ?", *filter.IsArchived)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := filter.SortBy + " " + filter.SortOrder
	offset := (filter.Page - 1) * filter.PageSize

	var questions []model.ErrorQuestion
	err := query.Order(order).Offset(offset).Limit(filter.PageSize).Find(&questions).Error
	return questions, total, err
}

// UpdateFields 部分更新，仅写入 updates 中出现的列
func (r *ErrorQuestionRepository) UpdateFields(question *model.ErrorQuestion, updates map[string]interface{}) error {
	return r.DB.Model(question).Updates(updates).Error
}

func (r *ErrorQuestionRepository) Delete(question *model.ErrorQuestion) error {
	return r.DB.Delete(question).Error
}

func (r *ErrorQuestionRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ErrorQuestion{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
