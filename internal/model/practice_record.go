package model

type PracticeRecord struct {
	UUIDBase
	UserID     string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"question_id"`

	IsCorrect  bool     `json:"is_correct"`
	UserAnswer string   `gorm:"type:text" json:"user_answer"`
	TimeSpent  int      `json:"time_spent"` // 用时（秒）
	Confidence *float64 `json:"confidence,omitempty"` // 置信度 0-1
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}
