package store

import (
	"Showcase/internal/pkg/bus"
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Row 一行数据，列名到值的映射
type Row map[string]any

// Filter 等值过滤条件
type Filter map[string]any

// Order 排序条件
type Order struct {
	Column string
	Desc   bool
}

var (
	// ErrUnknownTable 访问了未注册的逻辑表
	ErrUnknownTable = errors.New("unknown table")
	// ErrRowNotFound 更新的目标行不存在
	ErrRowNotFound = errors.New("row not found")
)

// Store 存储策略。远程（MySQL）、本地文件与空实现共用同一套契约，
// 由构造时注入，控制器不感知具体后端
type Store interface {
	// FetchAll 按条件拉取整表数据
	FetchAll(ctx context.Context, table string, filter Filter, order *Order) ([]Row, error)
	// Insert 插入一行，返回补全了服务端字段（id、created_at）的行
	Insert(ctx context.Context, table string, row Row) (Row, error)
	// Update 按 id 更新指定列
	Update(ctx context.Context, table string, id string, patch Row) error
	// Subscribe 订阅表级变更通知，通知不含数据，调用方须重新拉取
	Subscribe(table string, mask bus.Event) *bus.Subscription
}

// EncodeRows 将模型切片转为通用行
func EncodeRows(v any) ([]Row, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode rows")
	}
	var rows []Row
	if err = json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "decode rows")
	}
	return rows, nil
}

// DecodeRows 将通用行解码到模型切片
func DecodeRows(rows []Row, out any) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrap(err, "encode rows")
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decode rows")
}

// DecodeRow 将单行解码到模型
func DecodeRow(row Row, out any) error {
	raw, err := json.Marshal(row)
	if err != nil {
		return errors.Wrap(err, "encode row")
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decode row")
}
