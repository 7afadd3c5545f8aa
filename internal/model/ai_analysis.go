package model

// AnalysisType 取值：error_analysis, similar_questions, explanation, knowledge_extraction
type AIAnalysis struct {
	UUIDBase
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"question_id"`

	AnalysisType   string `gorm:"size:50;index;not null" json:"analysis_type"`
	AnalysisResult string `gorm:"type:json" json:"analysis_result"`

	// AI 模型信息
	ModelName  string `gorm:"size:100" json:"model_name"`
	TokensUsed int    `json:"tokens_used"`

	// 状态：pending, completed, failed
	Status       string `gorm:"size:20;default:'completed'" json:"status"`
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`
}

func (AIAnalysis) TableName() string {
	return "ai_analyses"
}
