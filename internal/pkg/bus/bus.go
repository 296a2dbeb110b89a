package bus

import (
	"context"
	"sync"
)

// Event 行级变更事件类型，可按位组合作为订阅掩码
type Event uint8

const (
	EventInsert Event = 1 << iota
	EventUpdate
	EventDelete
)

// EventAll 订阅全部事件
const EventAll = EventInsert | EventUpdate | EventDelete

func (e Event) String() string {
	switch e {
	case EventInsert:
		return "insert"
	case EventUpdate:
		return "update"
	case EventDelete:
		return "delete"
	}
	return "unknown"
}

// ParseEvent 解析事件名，未知事件返回 0
func ParseEvent(s string) Event {
	switch s {
	case "insert":
		return EventInsert
	case "update":
		return EventUpdate
	case "delete":
		return EventDelete
	}
	return 0
}

// Bus 变更通知总线。通知不携带数据，消费方收到后须自行重新拉取
type Bus interface {
	Publish(ctx context.Context, table string, ev Event) error
	Subscribe(table string, mask Event) *Subscription
}

// Subscription 一次可取消的订阅
type Subscription struct {
	ch        chan Event
	closeOnce sync.Once
	closeFn   func()
}

// Events 返回事件通道，订阅关闭后通道关闭
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close 取消订阅
func (s *Subscription) Close() {
	s.closeOnce.Do(s.closeFn)
}

// Inert 返回一个永远不会产生事件的订阅，供空实现使用
func Inert() *Subscription {
	sub := &Subscription{ch: make(chan Event)}
	sub.closeFn = func() { close(sub.ch) }
	return sub
}
