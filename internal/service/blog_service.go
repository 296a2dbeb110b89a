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
	"sync"
	"time"

	"github.com/jinzhu/copier"
)

// BlogService 博客内容同步控制器。启动后保持一份内存快照，
// 收到表变更通知时整体重新拉取替换，不做增量合并
type BlogService interface {
	// Start 完成首次拉取并启动变更监听
	Start(ctx context.Context)
	// List 返回当前快照，tag 非空时在快照内过滤，不发起任何存储调用
	List(tag string) *dto.PostListDTO
	// OpenPost 打开文章：乐观 +1 浏览数并异步回写，回写失败不回滚
	OpenPost(ctx context.Context, postID string) (*dto.PostDTO, error)
	// Refresh 全量拉取并替换快照
	Refresh(ctx context.Context)
}

type blogServiceImpl struct {
	store store.Store

	mu    sync.RWMutex
	ready bool
	posts []*dto.PostDTO
}

func NewBlogService(st store.Store) BlogService {
	return &blogServiceImpl{store: st}
}

func (s *blogServiceImpl) Start(ctx context.Context) {
	s.Refresh(ctx)

	sub := s.store.Subscribe(consts.TableBlogPosts, bus.EventAll)
	go s.watch(ctx, sub)
}

// watch 任意事件都触发一次全量拉取。与本地写入并发时可能出现
// 重叠的两次拉取，结果都收敛到远端事实，代价只是多余的一次读
func (s *blogServiceImpl) watch(ctx context.Context, sub *bus.Subscription) {
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

func (s *blogServiceImpl) Refresh(ctx context.Context) {
	rows, err := s.store.FetchAll(ctx, consts.TableBlogPosts,
		store.Filter{"published": true},
		&store.Order{Column: "created_at", Desc: true})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true

	if err != nil {
		// 后台对账失败保持静默，沿用上一份快照
		log.WarnContext(ctx, "refresh blog posts failed", "err", err)
		return
	}

	var posts []model.Post
	if err = store.DecodeRows(rows, &posts); err != nil {
		log.WarnContext(ctx, "decode blog posts failed", "err", err)
		return
	}

	next := make([]*dto.PostDTO, 0, len(posts))
	for i := range posts {
		next = append(next, toPostDTO(&posts[i]))
	}
	s.posts = next
}

func (s *blogServiceImpl) List(tag string) *dto.PostListDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}

	out := make([]*dto.PostDTO, 0, len(s.posts))
	for _, p := range s.posts {
		if tag != "" && !containsTag(p.Tags, tag) {
			continue
		}
		c := *p
		out = append(out, &c)
	}

	return &dto.PostListDTO{Posts: out, Tags: tags, Ready: s.ready}
}

func (s *blogServiceImpl) OpenPost(ctx context.Context, postID string) (*dto.PostDTO, error) {
	s.mu.Lock()
	var target *dto.PostDTO
	for _, p := range s.posts {
		if p.ID == postID {
			target = p
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil, ErrPostNotFound
	}

	views := target.Views + 1
	target.Views = views
	detail := *target
	s.mu.Unlock()

	// 浏览数是 vanity 指标，异步回写，失败不回滚本地值
	go func() {
		wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.Update(wctx, consts.TableBlogPosts, postID, store.Row{"views": views}); err != nil {
			log.WarnContext(ctx, "sync view count failed", "post_id", postID, "err", err)
		}
	}()

	return &detail, nil
}

func toPostDTO(m *model.Post) *dto.PostDTO {
	var d dto.PostDTO
	_ = copier.Copy(&d, m)
	d.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	d.ReadTime = util.ReadTime(m.Content)
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
