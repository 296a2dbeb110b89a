package store

import (
	"Showcase/internal/pkg/bus"
	"context"
)

// noopStore 空对象实现。远程存储未配置时注入，
// 所有操作均为无副作用的成功，界面降级为空态而不是崩溃
type noopStore struct{}

// NewNoopStore 未配置时的空实现
func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) FetchAll(context.Context, string, Filter, *Order) ([]Row, error) {
	return []Row{}, nil
}

func (noopStore) Insert(_ context.Context, _ string, row Row) (Row, error) {
	return row, nil
}

func (noopStore) Update(context.Context, string, string, Row) error {
	return nil
}

func (noopStore) Subscribe(string, bus.Event) *bus.Subscription {
	return bus.Inert()
}
