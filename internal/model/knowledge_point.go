package model

// KnowledgePoint 知识点，parent_id 构成学科内的层级树
type KnowledgePoint struct {
	UUIDBase
	Name        string `gorm:"size:100;index;not null" json:"name"`
	Code        string `gorm:"size:50;uniqueIndex" json:"code"`
	Subject     string `gorm:"size:50;index;not null" json:"subject"`
	Description string `gorm:"type:text" json:"description"`

	ParentID *string `gorm:"type:varchar(36);index" json:"parent_id,omitempty"`
	Level    int     `gorm:"default:1" json:"level"` // 层级，1 为顶层

	Children []KnowledgePoint           `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
	Mappings []QuestionKnowledgeMapping `gorm:"foreignKey:KnowledgePointID;constraint:OnDelete:CASCADE" json:"-"`
}

func (KnowledgePoint) TableName() string {
	return "knowledge_points"
}

// QuestionKnowledgeMapping 错题与知识点的关联
type QuestionKnowledgeMapping struct {
	UUIDBase
	QuestionID       string `gorm:"type:varchar(36);index;not null" json:"question_id"`
	KnowledgePointID string `gorm:"type:varchar(36);index;not null" json:"knowledge_point_id"`

	RelevanceScore float64 `gorm:"default:1" json:"relevance_score"` // 关联度 0-1
}

func (QuestionKnowledgeMapping) TableName() string {
	return "question_knowledge_mappings"
}
