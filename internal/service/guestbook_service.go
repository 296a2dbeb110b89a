package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/util"
	"Showcase/internal/store"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jinzhu/copier"
)

// GuestbookService 留言板内容同步控制器。留言对客户端只增不改不删，
// 因此变更订阅只关心 insert 事件
type GuestbookService interface {
	Start(ctx context.Context)
	// List 返回当前快照并标记当前访客的点赞状态
	List(ctx context.Context, visitorID string) *dto.GuestbookListDTO
	// Sign 校验通过后写入留言，成功后全量重拉以获得服务端 id 与时间戳
	Sign(ctx context.Context, req *dto.SignGuestbookDTO) error
	// ToggleLike 点赞开关，同步写穿存储，失败不回滚本地值
	ToggleLike(ctx context.Context, visitorID, entryID string) (*dto.GuestbookEntryDTO, error)
	Refresh(ctx context.Context)
}

type guestbookServiceImpl struct {
	store store.Store
	liked LikedSet

	mu      sync.RWMutex
	ready   bool
	entries []*dto.GuestbookEntryDTO
}

func NewGuestbookService(st store.Store, liked LikedSet) GuestbookService {
	return &guestbookServiceImpl{store: st, liked: liked}
}

func (s *guestbookServiceImpl) Start(ctx context.Context) {
	s.Refresh(ctx)

	sub := s.store.Subscribe(consts.TableGuestbook, bus.EventInsert)
	go s.watch(ctx, sub)
}

func (s *guestbookServiceImpl) watch(ctx context.Context, sub *bus.Subscription) {
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Events():
			if !ok {
				return
			}
			s.Refresh(ctx)
		}
	}
}

func (s *guestbookServiceImpl) Refresh(ctx context.Context) {
	rows, err := s.store.FetchAll(ctx, consts.TableGuestbook, nil,
		&store.Order{Column: "created_at", Desc: true})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true

	if err != nil {
		log.WarnContext(ctx, "refresh guestbook failed", "err", err)
		return
	}

	var entries []model.GuestbookEntry
	if err = store.DecodeRows(rows, &entries); err != nil {
		log.WarnContext(ctx, "decode guestbook entries failed", "err", err)
		return
	}

	next := make([]*dto.GuestbookEntryDTO, 0, len(entries))
	for i := range entries {
		next = append(next, toEntryDTO(&entries[i]))
	}
	s.entries = next
}

func (s *guestbookServiceImpl) List(ctx context.Context, visitorID string) *dto.GuestbookListDTO {
	s.mu.RLock()
	out := make([]*dto.GuestbookEntryDTO, 0, len(s.entries))
	for _, e := range s.entries {
		c := *e
		out = append(out, &c)
	}
	ready := s.ready
	s.mu.RUnlock()

	for _, e := range out {
		liked, err := s.liked.Contains(ctx, visitorID, e.ID)
		if err != nil {
			log.WarnContext(ctx, "load liked set failed", "visitor_id", visitorID, "err", err)
			break
		}
		e.Liked = liked
	}

	return &dto.GuestbookListDTO{Entries: out, Ready: ready}
}

func (s *guestbookServiceImpl) Sign(ctx context.Context, req *dto.SignGuestbookDTO) error {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)

	// 校验失败直接返回，不发起任何存储调用
	switch {
	case name == "":
		return ErrNameRequired
	case message == "":
		return ErrMessageRequired
	case utf8.RuneCountInString(name) > consts.GuestbookNameMaxLen:
		return ErrNameTooLong
	case utf8.RuneCountInString(message) > consts.GuestbookMessageMaxLen:
		return ErrMessageTooLong
	}

	_, err := s.store.Insert(ctx, consts.TableGuestbook, store.Row{
		"name":    name,
		"message": message,
		"likes":   0,
	})
	if err != nil {
		log.ErrorContext(ctx, "sign guestbook failed", "err", err)
		return ErrSignFailed
	}

	// 不做乐观前插，重拉一次拿到服务端生成的 id 和时间戳
	s.Refresh(ctx)
	return nil
}

func (s *guestbookServiceImpl) ToggleLike(ctx context.Context, visitorID, entryID string) (*dto.GuestbookEntryDTO, error) {
	s.mu.Lock()
	var target *dto.GuestbookEntryDTO
	for _, e := range s.entries {
		if e.ID == entryID {
			target = e
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil, ErrEntryNotFound
	}
	s.mu.Unlock()

	liked, err := s.liked.Toggle(ctx, visitorID, entryID)
	if err != nil {
		log.ErrorContext(ctx, "toggle liked set failed", "entry_id", entryID, "err", err)
		return nil, UnExpectedError
	}

	// 放锁期间快照可能已被整体替换，按 id 重新定位
	s.mu.Lock()
	target = nil
	for _, e := range s.entries {
		if e.ID == entryID {
			target = e
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil, ErrEntryNotFound
	}
	if liked {
		target.Likes++
	} else if target.Likes > 0 {
		target.Likes--
	}
	likes := target.Likes
	detail := *target
	detail.Liked = liked
	s.mu.Unlock()

	// 点赞数写穿存储，失败只记录，本地值不回滚
	if err = s.store.Update(ctx, consts.TableGuestbook, entryID, store.Row{"likes": likes}); err != nil {
		log.WarnContext(ctx, "sync like count failed", "entry_id", entryID, "err", err)
	}

	return &detail, nil
}

func toEntryDTO(m *model.GuestbookEntry) *dto.GuestbookEntryDTO {
	var d dto.GuestbookEntryDTO
	_ = copier.Copy(&d, m)
	d.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	d.Avatar = util.AvatarColor(m.Name)
	return &d
}
