package kvstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Store 本地持久化适配器：字符串键、JSON 值的文件存储。
// 写操作先落盘再更新内存，无批处理、无防抖、无过期
type Store struct {
	path string
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open 打开或创建指定路径的存储文件
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create kvstore dir")
	}

	s := &Store{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "read kvstore file")
	}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &s.data); err != nil {
			return nil, errors.Wrap(err, "decode kvstore file")
		}
	}
	return s, nil
}

// Get 读取键值到 out，键不存在时使用默认值
func (s *Store) Get(key string, out any, def any) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()

	if !ok {
		raw, err := json.Marshal(def)
		if err != nil {
			return errors.Wrap(err, "encode default value")
		}
		return errors.Wrap(json.Unmarshal(raw, out), "decode default value")
	}
	return errors.Wrapf(json.Unmarshal(raw, out), "decode key %s", key)
}

// Set 写入键值，同步持久化成功后才更新内存
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode key %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]json.RawMessage, len(s.data)+1)
	for k, v := range s.data {
		next[k] = v
	}
	next[key] = raw

	if err = s.persist(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// persist 整体写入临时文件后原子替换
func (s *Store) persist(data map[string]json.RawMessage) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "encode kvstore data")
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "write kvstore temp file")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "replace kvstore file")
}
