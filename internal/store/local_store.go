package store

import (
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/kvstore"
	"context"
	log "log/slog"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// LocalStore 本地文件降级实现。数据经 kvstore 落盘，
// 与远程存储互不同步，各自独立播种
type LocalStore struct {
	mu  sync.Mutex
	kv  *kvstore.Store
	bus bus.Bus
}

// NewLocalStore 本地存储实现
func NewLocalStore(kv *kvstore.Store, b bus.Bus) *LocalStore {
	return &LocalStore{kv: kv, bus: b}
}

func (s *LocalStore) FetchAll(_ context.Context, table string, filter Filter, order *Order) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(table)
	if err != nil {
		return nil, err
	}

	matched := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matchFilter(row, filter) {
			matched = append(matched, row)
		}
	}

	if order != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			less := lessValue(matched[i][order.Column], matched[j][order.Column])
			if order.Desc {
				return !less && !equalValue(matched[i][order.Column], matched[j][order.Column])
			}
			return less
		})
	}
	return matched, nil
}

func (s *LocalStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(table)
	if err != nil {
		return nil, err
	}

	full := make(Row, len(row)+2)
	for k, v := range row {
		full[k] = v
	}
	if id, _ := full["id"].(string); id == "" {
		full["id"] = uuid.NewString()
	}
	full["created_at"] = time.Now().Format(time.RFC3339)

	rows = append(rows, full)
	if err = s.kv.Set(table, rows); err != nil {
		return nil, err
	}

	s.notify(ctx, table, bus.EventInsert)
	return full, nil
}

func (s *LocalStore) Update(ctx context.Context, table string, id string, patch Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(table)
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if rowID, _ := row["id"].(string); rowID == id {
			for k, v := range patch {
				row[k] = v
			}
			found = true
			break
		}
	}
	if !found {
		return ErrRowNotFound
	}

	if err = s.kv.Set(table, rows); err != nil {
		return err
	}

	s.notify(ctx, table, bus.EventUpdate)
	return nil
}

func (s *LocalStore) Subscribe(table string, mask bus.Event) *bus.Subscription {
	return s.bus.Subscribe(table, mask)
}

// SeedIfEmpty 首次启动时向空表写入种子数据
func (s *LocalStore) SeedIfEmpty(table string, rows []Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(table)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, row := range rows {
		if id, _ := row["id"].(string); id == "" {
			row["id"] = uuid.NewString()
		}
		if ts, _ := row["created_at"].(string); ts == "" {
			row["created_at"] = time.Now().Format(time.RFC3339)
		}
	}
	return s.kv.Set(table, rows)
}

func (s *LocalStore) load(table string) ([]Row, error) {
	var rows []Row
	if err := s.kv.Get(table, &rows, []Row{}); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LocalStore) notify(ctx context.Context, table string, ev bus.Event) {
	if err := s.bus.Publish(ctx, table, ev); err != nil {
		log.WarnContext(ctx, "publish change event failed", "table", table, "event", ev.String(), "err", err)
	}
}

// matchFilter 等值匹配，值统一走一次 JSON 归一化再比较
func matchFilter(row Row, filter Filter) bool {
	for k, want := range filter {
		if canon(row[k]) != canon(want) {
			return false
		}
	}
	return true
}

// canon 值的 JSON 规范形式，屏蔽 int/float64 这类解码差异
func canon(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func lessValue(a, b any) bool {
	switch av := normalize(a).(type) {
	case string:
		bv, _ := normalize(b).(string)
		return av < bv
	case float64:
		bv, _ := normalize(b).(float64)
		return av < bv
	}
	return false
}

func equalValue(a, b any) bool {
	return canon(a) == canon(b)
}
