package service

import (
	"Showcase/internal/pkg/consts"
	"Showcase/internal/store"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func analyticRow(total, today int) store.Row {
	return store.Row{
		"id":          "a1",
		"date":        time.Now().Format(dateLayout),
		"total_views": total,
		"today_views": today,
		"created_at":  "2024-09-01T00:00:00Z",
	}
}

func TestRecordVisitSeedsFirstRow(t *testing.T) {
	fs := newFakeStore()
	svc := NewAnalyticsService(fs)

	got := svc.RecordVisit(context.Background(), "session-1")
	if got.Loading {
		t.Fatal("expected loading cleared after first visit")
	}
	if got.TotalViews != 1 || got.TodayViews != 1 {
		t.Fatalf("expected 1/1 seed counters, got %d/%d", got.TotalViews, got.TodayViews)
	}
	if _, insert, _ := fs.calls(); insert != 1 {
		t.Fatalf("expected 1 insert, got %d", insert)
	}
}

func TestRecordVisitIncrementsExistingRow(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableAnalytics, analyticRow(41, 6))
	svc := NewAnalyticsService(fs)

	got := svc.RecordVisit(context.Background(), "session-1")
	if got.TotalViews != 42 || got.TodayViews != 7 {
		t.Fatalf("expected 42/7, got %d/%d", got.TotalViews, got.TodayViews)
	}
	if _, insert, update := fs.calls(); insert != 0 || update != 1 {
		t.Fatalf("expected update path, got insert=%d update=%d", insert, update)
	}
}

func TestRecordVisitOncePerSession(t *testing.T) {
	fs := newFakeStore()
	svc := NewAnalyticsService(fs)

	svc.RecordVisit(context.Background(), "session-1")
	fetchBefore, insertBefore, _ := fs.calls()

	got := svc.RecordVisit(context.Background(), "session-1")
	fetchAfter, insertAfter, _ := fs.calls()

	if fetchAfter != fetchBefore || insertAfter != insertBefore {
		t.Fatal("repeat visit in the same session must not hit the store")
	}
	if got.TotalViews != 1 || got.TodayViews != 1 {
		t.Fatalf("expected unchanged counters, got %d/%d", got.TotalViews, got.TodayViews)
	}

	// 另一个会话正常计数
	got = svc.RecordVisit(context.Background(), "session-2")
	if got.TotalViews != 2 || got.TodayViews != 2 {
		t.Fatalf("expected 2/2 for a new session, got %d/%d", got.TotalViews, got.TodayViews)
	}
}

func TestRecordVisitSwallowsFailureAndRetries(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableAnalytics, analyticRow(41, 6))
	fs.fetchErr = errors.New("connection refused")
	svc := NewAnalyticsService(fs)

	got := svc.RecordVisit(context.Background(), "session-1")
	if got.Loading {
		t.Fatal("failure must still clear the loading flag")
	}
	if got.TotalViews != 0 || got.TodayViews != 0 {
		t.Fatalf("expected last-known zero counters, got %d/%d", got.TotalViews, got.TodayViews)
	}

	// 失败不标记会话，恢复后同一会话重试成功
	fs.mu.Lock()
	fs.fetchErr = nil
	fs.mu.Unlock()

	got = svc.RecordVisit(context.Background(), "session-1")
	if got.TotalViews != 42 || got.TodayViews != 7 {
		t.Fatalf("expected retry to count 42/7, got %d/%d", got.TotalViews, got.TodayViews)
	}
}

func TestRecordVisitDedupesConcurrentSameSession(t *testing.T) {
	fs := newFakeStore()
	fs.fetchGate = make(chan struct{})
	svc := NewAnalyticsService(fs)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.RecordVisit(context.Background(), "session-1")
		}()
	}

	// 两个调用都越过会话检查后再放行存储
	time.Sleep(50 * time.Millisecond)
	close(fs.fetchGate)
	wg.Wait()

	fetch, insert, update := fs.calls()
	if fetch != 1 {
		t.Fatalf("expected a single store round-trip for one session, got %d fetches", fetch)
	}
	if insert+update != 1 {
		t.Fatalf("expected exactly one write for one session, got insert=%d update=%d", insert, update)
	}
	if got := svc.Counters(); got.TotalViews != 1 || got.TodayViews != 1 {
		t.Fatalf("expected 1/1 after overlapping visits, got %d/%d", got.TotalViews, got.TodayViews)
	}
}

func TestResetSessionsAllowsRecount(t *testing.T) {
	fs := newFakeStore()
	svc := NewAnalyticsService(fs)

	svc.RecordVisit(context.Background(), "session-1")
	svc.ResetSessions()

	got := svc.RecordVisit(context.Background(), "session-1")
	if got.TotalViews != 2 {
		t.Fatalf("expected recount after session reset, got total %d", got.TotalViews)
	}
}

func TestCountersSnapshot(t *testing.T) {
	fs := newFakeStore()
	svc := NewAnalyticsService(fs)

	got := svc.Counters()
	if !got.Loading {
		t.Fatal("expected loading before first reconcile")
	}

	svc.RecordVisit(context.Background(), "session-1")
	got = svc.Counters()
	if got.Loading || got.TotalViews != 1 {
		t.Fatalf("expected settled 1/1 snapshot, got %+v", got)
	}
}
