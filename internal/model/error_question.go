package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

type ErrorType string

const (
	ErrorTypeConcept     ErrorType = "concept"     // 概念理解错误
	ErrorTypeCalculation ErrorType = "calculation" // 计算错误
	ErrorTypeCareless    ErrorType = "careless"    // 粗心错误
	ErrorTypeMethod      ErrorType = "method"      // 方法错误
	ErrorTypeOther       ErrorType = "other"       // 其他
)

// StringList 有序字符串列表，以 JSON 列存储
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// swagger:model ErrorQuestion
type ErrorQuestion struct {
	UUIDBase
	UserID string `gorm:"type:varchar(36);index;not null" json:"user_id"`

	// 题目基本信息
	Subject          string `gorm:"size:50;index;not null" json:"subject"`
	Chapter          string `gorm:"size:100" json:"chapter"`
	QuestionText     string `gorm:"type:text" json:"question_text"`
	QuestionImageURL string `gorm:"type:text" json:"question_image_url"`

	// 答案信息
	CorrectAnswer string `gorm:"type:text" json:"correct_answer"`
	UserAnswer    string `gorm:"type:text" json:"user_answer"`
	Explanation   string `gorm:"type:text" json:"explanation"`

	// 分类与标签
	Difficulty DifficultyLevel `gorm:"type:enum('easy','medium','hard');default:'medium';index" json:"difficulty"`
	ErrorType  ErrorType       `gorm:"type:enum('concept','calculation','careless','method','other');default:'other';index" json:"error_type"`
	Tags       StringList      `gorm:"type:json" json:"tags"`

	// 学习数据
	ReviewCount    int        `gorm:"default:0" json:"review_count"`
	MasteryLevel   float64    `gorm:"default:0" json:"mastery_level"` // 掌握程度 0-1
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`

	// 状态
	IsArchived bool `gorm:"default:false" json:"is_archived"`
	IsFavorite bool `gorm:"default:false" json:"is_favorite"`

	// 级联关系：删除错题时一并删除分析、知识点映射与练习记录
	AIAnalyses        []AIAnalysis               `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	KnowledgeMappings []QuestionKnowledgeMapping `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	PracticeRecords   []PracticeRecord           `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ErrorQuestion) TableName() string {
	return "error_questions"
}
