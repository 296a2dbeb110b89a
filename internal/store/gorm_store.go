package store

import (
	"Showcase/internal/model"
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/consts"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 逻辑表到模型的注册表
var (
	tableModels = map[string]func() any{
		consts.TableBlogPosts: func() any { return new(model.Post) },
		consts.TableGuestbook: func() any { return new(model.GuestbookEntry) },
		consts.TableAnalytics: func() any { return new(model.PageAnalytic) },
	}
	tableSlices = map[string]func() any{
		consts.TableBlogPosts: func() any { return new([]model.Post) },
		consts.TableGuestbook: func() any { return new([]model.GuestbookEntry) },
		consts.TableAnalytics: func() any { return new([]model.PageAnalytic) },
	}
)

type gormStore struct {
	db  *gorm.DB
	bus bus.Bus
}

// NewGormStore 远程存储实现，每次提交成功后向总线发布变更事件
func NewGormStore(db *gorm.DB, b bus.Bus) Store {
	return &gormStore{db: db, bus: b}
}

func (s *gormStore) FetchAll(ctx context.Context, table string, filter Filter, order *Order) ([]Row, error) {
	sliceFn, ok := tableSlices[table]
	if !ok {
		return nil, ErrUnknownTable
	}

	dest := sliceFn()
	q := s.db.WithContext(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if order != nil {
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: order.Column},
			Desc:   order.Desc,
		})
	}
	if err := q.Find(dest).Error; err != nil {
		return nil, errors.Wrapf(err, "fetch %s", table)
	}
	return EncodeRows(dest)
}

func (s *gormStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	modelFn, ok := tableModels[table]
	if !ok {
		return nil, ErrUnknownTable
	}

	// 服务端补全 id 与时间戳
	full := make(Row, len(row)+2)
	for k, v := range row {
		full[k] = v
	}
	if id, _ := full["id"].(string); id == "" {
		full["id"] = uuid.NewString()
	}
	full["created_at"] = time.Now().Format(time.RFC3339)

	m := modelFn()
	if err := DecodeRow(full, m); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, errors.Wrapf(err, "insert into %s", table)
	}

	s.notify(ctx, table, bus.EventInsert)
	return full, nil
}

func (s *gormStore) Update(ctx context.Context, table string, id string, patch Row) error {
	modelFn, ok := tableModels[table]
	if !ok {
		return ErrUnknownTable
	}

	result := s.db.WithContext(ctx).
		Model(modelFn()).
		Where("id = ?", id).
		Updates(map[string]any(patch))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update %s %s", table, id)
	}
	if result.RowsAffected == 0 {
		return ErrRowNotFound
	}

	s.notify(ctx, table, bus.EventUpdate)
	return nil
}

func (s *gormStore) Subscribe(table string, mask bus.Event) *bus.Subscription {
	return s.bus.Subscribe(table, mask)
}

func (s *gormStore) notify(ctx context.Context, table string, ev bus.Event) {
	if err := s.bus.Publish(ctx, table, ev); err != nil {
		log.WarnContext(ctx, "publish change event failed", "table", table, "event", ev.String(), "err", err)
	}
}
