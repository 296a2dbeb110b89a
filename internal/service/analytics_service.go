package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/store"
	"context"
	"errors"
	log "log/slog"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

const dateLayout = "2006-01-02"

// mysqlDuplicateEntry MySQL 唯一键冲突错误码
const mysqlDuplicateEntry = 1062

// AnalyticsService 访问统计控制器。单会话只计一次（内存标记，不落盘），
// 没有变更订阅：每个会话只有自己这一次写入，无需实时观察他人的自增
type AnalyticsService interface {
	// RecordVisit 记录一次访问并返回计数。错误一律吞掉，
	// 统计是 vanity 功能，失败时保留上次已知值并清除加载态
	RecordVisit(ctx context.Context, sessionID string) *dto.AnalyticsDTO
	// Counters 当前本地计数快照
	Counters() *dto.AnalyticsDTO
	// Refresh 与存储对账当天计数
	Refresh(ctx context.Context)
	// ResetSessions 清空会话去重标记，日期翻转后由定时任务调用
	ResetSessions()
}

type analyticsServiceImpl struct {
	store store.Store

	mu       sync.Mutex
	loading  bool
	total    int
	today    int
	sessions map[string]struct{}
}

func NewAnalyticsService(st store.Store) AnalyticsService {
	return &analyticsServiceImpl{
		store:    st,
		loading:  true,
		sessions: make(map[string]struct{}),
	}
}

func (s *analyticsServiceImpl) RecordVisit(ctx context.Context, sessionID string) *dto.AnalyticsDTO {
	s.mu.Lock()
	if _, seen := s.sessions[sessionID]; seen {
		defer s.mu.Unlock()
		return s.snapshot()
	}
	// 放锁前先占位，并发的同会话请求只有一个会走到存储；失败路径撤销占位
	s.sessions[sessionID] = struct{}{}
	s.mu.Unlock()

	today := time.Now().Format(dateLayout)
	rows, err := s.store.FetchAll(ctx, consts.TableAnalytics, store.Filter{"date": today}, nil)
	if err != nil {
		return s.fail(ctx, sessionID, err)
	}

	if len(rows) > 0 {
		var row model.PageAnalytic
		if err = store.DecodeRow(rows[0], &row); err != nil {
			return s.fail(ctx, sessionID, err)
		}

		// 乐观回显增一后的值，不与写入的实际结果对账
		if err = s.store.Update(ctx, consts.TableAnalytics, row.ID, store.Row{
			"total_views": row.TotalViews + 1,
			"today_views": row.TodayViews + 1,
		}); err != nil {
			return s.fail(ctx, sessionID, err)
		}
		return s.commit(row.TotalViews+1, row.TodayViews+1)
	}

	// 当天首次访问，新行播种 1/1
	if _, err = s.store.Insert(ctx, consts.TableAnalytics, store.Row{
		"date":        today,
		"total_views": 1,
		"today_views": 1,
	}); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			// 并发首访撞了唯一键，当天行已由别的实例建出，下个会话会走更新分支
			log.InfoContext(ctx, "analytics row already created concurrently", "date", today)
			return s.fail(ctx, sessionID, nil)
		}
		return s.fail(ctx, sessionID, err)
	}
	return s.commit(1, 1)
}

func (s *analyticsServiceImpl) Counters() *dto.AnalyticsDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *analyticsServiceImpl) Refresh(ctx context.Context) {
	today := time.Now().Format(dateLayout)
	rows, err := s.store.FetchAll(ctx, consts.TableAnalytics, store.Filter{"date": today}, nil)
	if err != nil {
		log.WarnContext(ctx, "refresh analytics failed", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(rows) == 0 {
		s.today = 0
		return
	}
	var row model.PageAnalytic
	if err = store.DecodeRow(rows[0], &row); err != nil {
		log.WarnContext(ctx, "decode analytics row failed", "err", err)
		return
	}
	s.total = row.TotalViews
	s.today = row.TodayViews
	s.loading = false
}

func (s *analyticsServiceImpl) ResetSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]struct{})
}

// commit 更新本地计数，会话占位在进入存储前已完成
func (s *analyticsServiceImpl) commit(total, today int) *dto.AnalyticsDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
	s.today = today
	s.loading = false
	return s.snapshot()
}

// fail 吞掉错误：保留上次已知值，仅清除加载态。撤销会话占位，下次重试
func (s *analyticsServiceImpl) fail(ctx context.Context, sessionID string, err error) *dto.AnalyticsDTO {
	if err != nil {
		log.WarnContext(ctx, "record visit failed", "err", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	s.loading = false
	return s.snapshot()
}

func (s *analyticsServiceImpl) snapshot() *dto.AnalyticsDTO {
	return &dto.AnalyticsDTO{
		TotalViews: s.total,
		TodayViews: s.today,
		Loading:    s.loading,
	}
}
