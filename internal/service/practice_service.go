package service

// PracticeSubmitResult 答案提交结果
type PracticeSubmitResult struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

// ReviewPlan 复习计划，按到期时间分桶
type ReviewPlan struct {
	Today    []map[string]interface{} `json:"today"`
	ThisWeek []map[string]interface{} `json:"this_week"`
	Overdue  []map[string]interface{} `json:"overdue"`
}

// PracticeService 练习服务。契约实现，推荐与遗忘曲线调度待接入。
type PracticeService struct{}

func NewPracticeService() *PracticeService {
	return &PracticeService{}
}

func (s *PracticeService) Recommend(userID, subject string, limit int) []map[string]interface{} {
	return []map[string]interface{}{}
}

func (s *PracticeService) Submit(userID, questionID, answer string, timeSpent int) *PracticeSubmitResult {
	return &PracticeSubmitResult{
		IsCorrect: true,
		Feedback:  "回答正确！",
	}
}

func (s *PracticeService) GetReviewPlan(userID string) *ReviewPlan {
	return &ReviewPlan{
		Today:    []map[string]interface{}{},
		ThisWeek: []map[string]interface{}{},
		Overdue:  []map[string]interface{}{},
	}
}
