package bus

import (
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/redis"
	"context"
	log "log/slog"
)

// RedisBus 基于 Redis Pub/Sub 的总线，多实例部署时通知全局可见
type RedisBus struct{}

func NewRedisBus() *RedisBus {
	return &RedisBus{}
}

func (b *RedisBus) Publish(ctx context.Context, table string, ev Event) error {
	return redis.Publish(ctx, consts.ChangeChannelKey+table, ev.String())
}

func (b *RedisBus) Subscribe(table string, mask Event) *Subscription {
	pubsub := redis.Subscribe(context.Background(), consts.ChangeChannelKey+table)

	sub := &Subscription{ch: make(chan Event, subBuffer)}
	sub.closeFn = func() {
		if err := pubsub.Close(); err != nil {
			log.Warn("close redis subscription failed", "table", table, "err", err)
		}
	}

	go func() {
		defer close(sub.ch)
		for msg := range pubsub.Channel() {
			ev := ParseEvent(msg.Payload)
			if ev&mask == 0 {
				continue
			}
			select {
			case sub.ch <- ev:
			default:
			}
		}
	}()

	return sub
}
