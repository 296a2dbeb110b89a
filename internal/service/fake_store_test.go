package service

import (
	"Showcase/internal/pkg/bus"
	"Showcase/internal/store"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeStore 内存实现，记录调用次数并支持按操作注入错误
type fakeStore struct {
	mu   sync.Mutex
	rows map[string][]store.Row
	bus  *bus.MemBus
	seq  int

	fetchCalls  int
	insertCalls int
	updateCalls int

	fetchErr  error
	insertErr error
	updateErr error

	// fetchGate 非 nil 时，FetchAll 在进入前阻塞等待放行
	fetchGate chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows: make(map[string][]store.Row),
		bus:  bus.NewMemBus(),
	}
}

func (f *fakeStore) FetchAll(_ context.Context, table string, filter store.Filter, _ *store.Order) ([]store.Row, error) {
	if f.fetchGate != nil {
		<-f.fetchGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	out := make([]store.Row, 0, len(f.rows[table]))
	for _, row := range f.rows[table] {
		if rowMatches(row, filter) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	f.mu.Lock()
	f.insertCalls++
	if f.insertErr != nil {
		f.mu.Unlock()
		return nil, f.insertErr
	}

	f.seq++
	full := make(store.Row, len(row)+2)
	for k, v := range row {
		full[k] = v
	}
	full["id"] = fmt.Sprintf("row-%d", f.seq)
	full["created_at"] = time.Now().UTC().Format(time.RFC3339)
	f.rows[table] = append(f.rows[table], full)
	f.mu.Unlock()

	_ = f.bus.Publish(ctx, table, bus.EventInsert)
	return full, nil
}

func (f *fakeStore) Update(ctx context.Context, table string, id string, patch store.Row) error {
	f.mu.Lock()
	f.updateCalls++
	if f.updateErr != nil {
		f.mu.Unlock()
		return f.updateErr
	}

	found := false
	for _, row := range f.rows[table] {
		if row["id"] == id {
			for k, v := range patch {
				row[k] = v
			}
			found = true
			break
		}
	}
	f.mu.Unlock()

	if !found {
		return store.ErrRowNotFound
	}
	_ = f.bus.Publish(ctx, table, bus.EventUpdate)
	return nil
}

func (f *fakeStore) Subscribe(table string, mask bus.Event) *bus.Subscription {
	return f.bus.Subscribe(table, mask)
}

func (f *fakeStore) seed(table string, rows ...store.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[table] = append(f.rows[table], rows...)
}

func (f *fakeStore) calls() (fetch, insert, update int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls, f.insertCalls, f.updateCalls
}

func rowMatches(row store.Row, filter store.Filter) bool {
	for k, want := range filter {
		if fmt.Sprint(row[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// waitFor 轮询等待后台协程完成的断言
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
