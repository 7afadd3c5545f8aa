package service

import (
	"time"

	"error_book_backend/internal/config"
	"error_book_backend/internal/model"
)

// AIAnalysisResult 单条分析结果
type AIAnalysisResult struct {
	AnalysisID   string                 `json:"analysis_id"`
	QuestionID   string                 `json:"question_id"`
	AnalysisType string                 `json:"analysis_type"`
	Result       map[string]interface{} `json:"result"`
	ModelName    string                 `json:"model_name"`
	TokensUsed   int                    `json:"tokens_used"`
	CreatedAt    time.Time              `json:"created_at"`
}

// SimilarQuestionsResult 相似题推荐结果
type SimilarQuestionsResult struct {
	SimilarQuestions []map[string]interface{} `json:"similar_questions"`
	TotalCount       int                      `json:"total_count"`
}

// ExplanationResult 解题思路结果
type ExplanationResult struct {
	StepByStep         []string `json:"step_by_step"`
	KeyPoints          []string `json:"key_points"`
	AlternativeMethods []string `json:"alternative_methods"`
}

// AIService AI 分析服务。当前为契约实现，返回固定的示例结果，
// 接入大模型后替换为真实调用。
type AIService struct {
	Cfg *config.Config
}

func NewAIService(cfg *config.Config) *AIService {
	return &AIService{Cfg: cfg}
}

// Analyze 错误原因分析
func (s *AIService) Analyze(question *model.ErrorQuestion, analysisTypes []string) []AIAnalysisResult {
	return []AIAnalysisResult{
		{
			AnalysisID:   model.GenerateUUID(),
			QuestionID:   question.ID,
			AnalysisType: "error_analysis",
			Result: map[string]interface{}{
				"error_reason":   "对概念理解不够深入",
				"error_category": string(model.ErrorTypeConcept),
				"knowledge_gaps": []string{"二次函数的对称性", "配方法"},
				"suggestions":    []string{"复习二次函数基本性质", "多做配方法练习题"},
			},
			ModelName:  s.Cfg.AI.Model,
			TokensUsed: 500,
			CreatedAt:  time.Now().UTC(),
		},
	}
}

// FindSimilar 相似题查找（待接入向量检索）
func (s *AIService) FindSimilar(questionID string, limit int) *SimilarQuestionsResult {
	return &SimilarQuestionsResult{
		SimilarQuestions: []map[string]interface{}{},
		TotalCount:       0,
	}
}

// Explain 解题思路生成
func (s *AIService) Explain(questionID string) *ExplanationResult {
	return &ExplanationResult{
		StepByStep:         []string{},
		KeyPoints:          []string{},
		AlternativeMethods: []string{},
	}
}
