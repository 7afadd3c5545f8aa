package service

import (
	"context"
	"errors"

	"error_book_backend/internal/model"
	"error_book_backend/internal/repository"
	"error_book_backend/internal/util"

	"gorm.io/gorm"
)

// CreateErrorQuestionInput 创建错题请求
type CreateErrorQuestionInput struct {
	Subject          string   `json:"subject" binding:"required,max=50"`
	Chapter          string   `json:"chapter" binding:"max=100"`
	QuestionText     string   `json:"question_text"`
	QuestionImageURL string   `json:"question_image_url"`
	CorrectAnswer    string   `json:"correct_answer"`
	UserAnswer       string   `json:"user_answer"`
	Explanation      string   `json:"explanation"`
	Difficulty       string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	ErrorType        string   `json:"error_type" binding:"omitempty,oneof=concept calculation careless method other"`
	Tags             []string `json:"tags"`
}

// UpdateErrorQuestionInput 部分更新请求，nil 字段保持原值
type UpdateErrorQuestionInput struct {
	Subject          *string   `json:"subject" binding:"omitempty,max=50"`
	Chapter          *string   `json:"chapter" binding:"omitempty,max=100"`
	QuestionText     *string   `json:"question_text"`
	QuestionImageURL *string   `json:"question_image_url"`
	CorrectAnswer    *string   `json:"correct_answer"`
	UserAnswer       *string   `json:"user_answer"`
	Explanation      *string   `json:"explanation"`
	Difficulty       *string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	ErrorType        *string   `json:"error_type" binding:"omitempty,oneof=concept calculation careless method other"`
	Tags             *[]string `json:"tags"`
	MasteryLevel     *float64  `json:"mastery_level" binding:"omitempty,min=0,max=1"`
	IsFavorite       *bool     `json:"is_favorite"`
	IsArchived       *bool     `json:"is_archived"`
}

// ListErrorQuestionsQuery 列表查询参数
type ListErrorQuestionsQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	Subject    string `form:"subject"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	ErrorType  string `form:"error_type" binding:"omitempty,oneof=concept calculation careless method other"`
	IsFavorite *bool  `form:"is_favorite"`
	IsArchived *bool  `form:"is_archived"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc" binding:"omitempty,oneof=asc desc"`
}

type ErrorQuestionService struct {
	QuestionRepo *repository.ErrorQuestionRepository
	Cache        *CacheService
}

func NewErrorQuestionService(questionRepo *repository.ErrorQuestionRepository, cache *CacheService) *ErrorQuestionService {
	return &ErrorQuestionService{QuestionRepo: questionRepo, Cache: cache}
}

// invalidateStatistics 错题集变化后丢弃统计缓存
func (s *ErrorQuestionService) invalidateStatistics(userID string) {
	if s.Cache != nil {
		s.Cache.Delete(context.Background(), statisticsCacheKey(userID))
	}
}

func (s *ErrorQuestionService) Create(user *model.User, input CreateErrorQuestionInput) (*model.ErrorQuestion, error) {
	question := &model.ErrorQuestion{
		UserID:           user.ID,
		Subject:          input.Subject,
		Chapter:          input.Chapter,
		QuestionText:     input.QuestionText,
		QuestionImageURL: input.QuestionImageURL,
		CorrectAnswer:    input.CorrectAnswer,
		UserAnswer:       input.UserAnswer,
		Explanation:      input.Explanation,
		Difficulty:       model.DifficultyMedium,
		ErrorType:        model.ErrorTypeOther,
		Tags:             model.StringList(input.Tags),
	}
	if input.Difficulty != "" {
		question.Difficulty = model.DifficultyLevel(input.Difficulty)
	}
	if input.ErrorType != "" {
		question.ErrorType = model.ErrorType(input.ErrorType)
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	s.invalidateStatistics(user.ID)
	return question, nil
}

func (s *ErrorQuestionService) List(user *model.User, query ListErrorQuestionsQuery) (*util.PageResponse, error) {
	filter, err := BuildListFilter(user.ID, query)
	if err != nil {
		return nil, err
	}

	questions, total, err := s.QuestionRepo.List(filter)
	if err != nil {
		return nil, err
	}

	return util.NewPageResponse(questions, total, filter.Page, filter.PageSize), nil
}

func (s *ErrorQuestionService) Get(user *model.User, id string) (*model.ErrorQuestion, error) {
	question, err := s.QuestionRepo.FindByIDAndUser(id, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("错题不存在")
		}
		return nil, err
	}
	return question, nil
}

func (s *ErrorQuestionService) Update(user *model.User, id string, input UpdateErrorQuestionInput) (*model.ErrorQuestion, error) {
	question, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}

	updates := BuildUpdates(input)
	if len(updates) == 0 {
		return question, nil
	}

	if err := s.QuestionRepo.UpdateFields(question, updates); err != nil {
		return nil, err
	}
	s.invalidateStatistics(user.ID)
	return question, nil
}

func (s *ErrorQuestionService) Delete(user *model.User, id string) error {
	question, err := s.Get(user, id)
	if err != nil {
		return err
	}
	if err := s.QuestionRepo.Delete(question); err != nil {
		return err
	}
	s.invalidateStatistics(user.ID)
	return nil
}

// BuildListFilter 归一化分页参数并校验排序字段
func BuildListFilter(userID string, query ListErrorQuestionsQuery) (repository.ErrorQuestionFilter, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}
	if query.SortBy == "" {
		query.SortBy = "created_at"
	}
	if query.SortOrder == "" {
		query.SortOrder = "desc"
	}

	column, ok := repository.SortColumn(query.SortBy)
	if !ok {
		return repository.ErrorQuestionFilter{}, util.NewValidationError("不支持的排序字段: "+query.SortBy, nil)
	}

	return repository.ErrorQuestionFilter{
		UserID:     userID,
		Subject:    query.Subject,
		Difficulty: query.Difficulty,
		ErrorType:  query.ErrorType,
		IsFavorite: query.IsFavorite,
		IsArchived: query.IsArchived,
		SortBy:     column,
		SortOrder:  query.SortOrder,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

// BuildUpdates 把部分更新请求转为列更新映射，仅包含调用方显式提供的字段
func BuildUpdates(input UpdateErrorQuestionInput) map[string]interface{} {
	updates := map[string]interface{}{}

	if input.Subject != nil {
		updates["subject"] = *input.Subject
	}
	if input.Chapter != nil {
		updates["chapter"] = *input.Chapter
	}
	if input.QuestionText != nil {
		updates["question_text"] = *input.QuestionText
	}
	if input.QuestionImageURL != nil {
		updates["question_image_url"] = *input.QuestionImageURL
	}
	if input.CorrectAnswer != nil {
		updates["correct_answer"] = *input.CorrectAnswer
	}
	if input.UserAnswer != nil {
		updates["user_answer"] = *input.UserAnswer
	}
	if input.Explanation != nil {
		updates["explanation"] = *input.Explanation
	}
	if input.Difficulty != nil {
		updates["difficulty"] = *input.Difficulty
	}
	if input.ErrorType != nil {
		updates["error_type"] = *input.ErrorType
	}
	if input.Tags != nil {
		updates["tags"] = model.StringList(*input.Tags)
	}
	if input.MasteryLevel != nil {
		updates["mastery_level"] = util.ClampFloat(*input.MasteryLevel, 0, 1)
	}
	if input.IsFavorite != nil {
		updates["is_favorite"] = *input.IsFavorite
	}
	if input.IsArchived != nil {
		updates["is_archived"] = *input.IsArchived
	}

	return updates
}
