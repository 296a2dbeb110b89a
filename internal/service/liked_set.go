package service

import (
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/kvstore"
	"Showcase/internal/pkg/redis"
	"context"
	"sync"
)

// LikedSet 访客已点赞留言集合。点赞是开关而不是计数累加，
// 集合跨重启保留，保证同一访客 like/unlike 往复后回到原状
type LikedSet interface {
	Contains(ctx context.Context, visitorID, entryID string) (bool, error)
	// Toggle 翻转点赞状态，返回翻转后是否为已点赞
	Toggle(ctx context.Context, visitorID, entryID string) (bool, error)
}

type redisLikedSet struct{}

// NewRedisLikedSet Redis 集合实现
func NewRedisLikedSet() LikedSet {
	return &redisLikedSet{}
}

func (s *redisLikedSet) Contains(ctx context.Context, visitorID, entryID string) (bool, error) {
	return redis.SIsMember(ctx, consts.GuestbookLikedKey+visitorID, entryID)
}

func (s *redisLikedSet) Toggle(ctx context.Context, visitorID, entryID string) (bool, error) {
	key := consts.GuestbookLikedKey + visitorID
	liked, err := redis.SIsMember(ctx, key, entryID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, redis.SRem(ctx, key, entryID)
	}
	return true, redis.SAdd(ctx, key, entryID)
}

type kvLikedSet struct {
	mu sync.Mutex
	kv *kvstore.Store
}

// NewKVLikedSet 本地文件实现，Redis 未配置时使用
func NewKVLikedSet(kv *kvstore.Store) LikedSet {
	return &kvLikedSet{kv: kv}
}

func (s *kvLikedSet) Contains(_ context.Context, visitorID, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(visitorID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == entryID {
			return true, nil
		}
	}
	return false, nil
}

func (s *kvLikedSet) Toggle(_ context.Context, visitorID, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(visitorID)
	if err != nil {
		return false, err
	}

	for i, id := range ids {
		if id == entryID {
			ids = append(ids[:i], ids[i+1:]...)
			return false, s.kv.Set(consts.GuestbookLikedKey+visitorID, ids)
		}
	}
	ids = append(ids, entryID)
	return true, s.kv.Set(consts.GuestbookLikedKey+visitorID, ids)
}

func (s *kvLikedSet) load(visitorID string) ([]string, error) {
	var ids []string
	if err := s.kv.Get(consts.GuestbookLikedKey+visitorID, &ids, []string{}); err != nil {
		return nil, err
	}
	return ids, nil
}
