package job

import (
	"Showcase/internal/pkg/logger"
	"Showcase/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// AnalyticsJob 日期翻转任务：清空会话去重标记并与存储对账，
// 跨零点的会话在新的一天重新计数
type AnalyticsJob struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsJob(analyticsSvc service.AnalyticsService) *AnalyticsJob {
	return &AnalyticsJob{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsJob) Run() {
	traceID := "job-analytics-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	s.analyticsSvc.ResetSessions()
	s.analyticsSvc.Refresh(ctx)

	log.InfoContext(ctx, "analytics daily rollover done")
}
