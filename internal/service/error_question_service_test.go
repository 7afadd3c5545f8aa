package service

import (
	"testing"

	"error_book_backend/internal/model"
	"error_book_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListFilterDefaults(t *testing.T) {
	filter, err := BuildListFilter("user-001", ListErrorQuestionsQuery{})
	require.NoError(t, err)

	assert.Equal(t, "user-001", filter.UserID)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)
	assert.Equal(t, "created_at", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
}

func TestBuildListFilterNormalizesPaging(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"负页码归一为 1", -3, 20, 1, 20},
		{"页大小为零取默认值", 2, 0, 2, 20},
		{"页大小超限截断到 100", 1, 500, 1, 100},
		{"正常参数保持不变", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := BuildListFilter("user-001", ListErrorQuestionsQuery{
				Page:     tt.page,
				PageSize: tt.pageSize,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, filter.Page)
			assert.Equal(t, tt.wantPageSize, filter.PageSize)
		})
	}
}

func TestBuildListFilterRejectsUnknownSortField(t *testing.T) {
	_, err := BuildListFilter("user-001", ListErrorQuestionsQuery{SortBy: "password_hash"})
	require.Error(t, err)

	appErr, ok := err.(*util.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, 422, appErr.Status)
	assert.Contains(t, appErr.Message, "password_hash")
}

func TestBuildListFilterPassesThroughConditions(t *testing.T) {
	favorite := true
	archived := false

	filter, err := BuildListFilter("user-001", ListErrorQuestionsQuery{
		Subject:    "数学",
		Difficulty: "hard",
		ErrorType:  "concept",
		IsFavorite: &favorite,
		IsArchived: &archived,
		SortBy:     "mastery_level",
		SortOrder:  "asc",
	})
	require.NoError(t, err)

	assert.Equal(t, "数学", filter.Subject)
	assert.Equal(t, "hard", filter.Difficulty)
	assert.Equal(t, "concept", filter.ErrorType)
	require.NotNil(t, filter.IsFavorite)
	assert.True(t, *filter.IsFavorite)
	require.NotNil(t, filter.IsArchived)
	assert.False(t, *filter.IsArchived)
	assert.Equal(t, "mastery_level", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
}

func TestBuildUpdatesOnlyIncludesProvidedFields(t *testing.T) {
	subject := "物理"
	mastery := 0.8

	updates := BuildUpdates(UpdateErrorQuestionInput{
		Subject:      &subject,
		MasteryLevel: &mastery,
	})

	assert.Len(t, updates, 2)
	assert.Equal(t, "物理", updates["subject"])
	assert.Equal(t, 0.8, updates["mastery_level"])
	assert.NotContains(t, updates, "chapter")
	assert.NotContains(t, updates, "is_favorite")
}

func TestBuildUpdatesEmptyInput(t *testing.T) {
	updates := BuildUpdates(UpdateErrorQuestionInput{})
	assert.Empty(t, updates)
}

func TestBuildUpdatesClampsMasteryLevel(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"超上限截断", 1.5, 1},
		{"低于下限截断", -0.2, 0},
		{"范围内保持", 0.35, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := BuildUpdates(UpdateErrorQuestionInput{MasteryLevel: &tt.input})
			assert.Equal(t, tt.want, updates["mastery_level"])
		})
	}
}

func TestBuildUpdatesTagsReplacement(t *testing.T) {
	tags := []string{"函数", "图像"}
	updates := BuildUpdates(UpdateErrorQuestionInput{Tags: &tags})

	assert.Equal(t, model.StringList{"函数", "图像"}, updates["tags"])

	// 空列表表示清空标签，与未提供不同
	empty := []string{}
	updates = BuildUpdates(UpdateErrorQuestionInput{Tags: &empty})
	assert.Contains(t, updates, "tags")
	assert.Equal(t, model.StringList{}, updates["tags"])
}

func TestBuildUpdatesBoolFlags(t *testing.T) {
	favorite := false
	updates := BuildUpdates(UpdateErrorQuestionInput{IsFavorite: &favorite})

	// 显式传 false 也要写入
	assert.Contains(t, updates, "is_favorite")
	assert.Equal(t, false, updates["is_favorite"])
}
