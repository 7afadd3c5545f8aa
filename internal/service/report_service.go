package service

import (
	"context"
	"fmt"
	"time"

	"error_book_backend/internal/repository"
)

const statisticsCacheTTL = 5 * time.Minute

func statisticsCacheKey(userID string) string {
	return "reports:statistics:" + userID
}

// Statistics 学习统计数据
type Statistics struct {
	TotalErrors    int64                    `json:"total_errors"`
	MasteredCount  int64                    `json:"mastered_count"`
	Subjects       map[string]int64         `json:"subjects"`
	WeeklyProgress []map[string]interface{} `json:"weekly_progress"`
}

// WeeklyReport 周报
type WeeklyReport struct {
	Week        string   `json:"week"`
	Summary     string   `json:"summary"`
	Highlights  []string `json:"highlights"`
	Suggestions []string `json:"suggestions"`
}

// ReportService 报告服务。学科分布与周趋势待接入，结果经 Redis 缓存。
type ReportService struct {
	Cache        *CacheService
	QuestionRepo *repository.ErrorQuestionRepository
}

func NewReportService(cache *CacheService, questionRepo *repository.ErrorQuestionRepository) *ReportService {
	return &ReportService{Cache: cache, QuestionRepo: questionRepo}
}

// GetStatistics 统计数据，cache-aside 读取
func (s *ReportService) GetStatistics(ctx context.Context, userID string) (*Statistics, error) {
	key := statisticsCacheKey(userID)

	var stats Statistics
	if s.Cache.Get(ctx, key, &stats) {
		return &stats, nil
	}

	total, err := s.QuestionRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	stats = Statistics{
		TotalErrors:    total,
		MasteredCount:  0,
		Subjects:       map[string]int64{},
		WeeklyProgress: []map[string]interface{}{},
	}

	s.Cache.Set(ctx, key, &stats, statisticsCacheTTL)
	return &stats, nil
}

// GetWeeklyReport 周报生成
func (s *ReportService) GetWeeklyReport(userID string) *WeeklyReport {
	year, week := time.Now().ISOWeek()
	return &WeeklyReport{
		Week:        fmt.Sprintf("%d-W%02d", year, week),
		Summary:     "本周学习情况良好",
		Highlights:  []string{},
		Suggestions: []string{},
	}
}
