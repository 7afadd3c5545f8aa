package service

// KnowledgeGraph 知识图谱节点与边
type KnowledgeGraph struct {
	Nodes []map[string]interface{} `json:"nodes"`
	Edges []map[string]interface{} `json:"edges"`
}

// LearningPath 学习路径规划结果
type LearningPath struct {
	Path          []map[string]interface{} `json:"path"`
	EstimatedTime int                      `json:"estimated_time"`
}

// KnowledgeService 知识图谱服务。契约实现，图谱构建与薄弱点分析待接入。
type KnowledgeService struct{}

func NewKnowledgeService() *KnowledgeService {
	return &KnowledgeService{}
}

func (s *KnowledgeService) GetGraph(userID, subject string) *KnowledgeGraph {
	return &KnowledgeGraph{
		Nodes: []map[string]interface{}{},
		Edges: []map[string]interface{}{},
	}
}

func (s *KnowledgeService) GetWeakPoints(userID string) []map[string]interface{} {
	return []map[string]interface{}{}
}

func (s *KnowledgeService) GetLearningPath(userID, subject string) *LearningPath {
	return &LearningPath{
		Path:          []map[string]interface{}{},
		EstimatedTime: 0,
	}
}
