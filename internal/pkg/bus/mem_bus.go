package bus

import (
	"context"
	"sync"
)

// 事件通道缓冲大小。通知不携带数据，堆积时丢弃即可，
// 队列里已有的事件同样会触发一次全量拉取
const subBuffer = 16

type memSub struct {
	table string
	mask  Event
	ch    chan Event
}

// MemBus 进程内总线，未配置 Redis 时的降级实现
type MemBus struct {
	mu   sync.Mutex
	subs map[string][]*memSub
}

func NewMemBus() *MemBus {
	return &MemBus{subs: make(map[string][]*memSub)}
}

func (b *MemBus) Publish(_ context.Context, table string, ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs[table] {
		if sub.mask&ev == 0 {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
	return nil
}

func (b *MemBus) Subscribe(table string, mask Event) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	ms := &memSub{table: table, mask: mask, ch: make(chan Event, subBuffer)}
	b.subs[table] = append(b.subs[table], ms)

	sub := &Subscription{ch: ms.ch}
	sub.closeFn = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[table]
		for i, s := range list {
			if s == ms {
				b.subs[table] = append(list[:i], list[i+1:]...)
				break
			}
		}
		close(ms.ch)
	}
	return sub
}
