package handler

import (
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/consts"
	log "log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// changeNotice 推送给浏览器的变更通知，不带行数据，
// 客户端收到后自行重新拉取对应列表
type changeNotice struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

type WsHandler struct {
	bus bus.Bus
}

func NewWsHandler(b bus.Bus) *WsHandler {
	return &WsHandler{bus: b}
}

// Connect 建立变更推送连接，tables 参数指定订阅的表，默认博客加留言板
func (s *WsHandler) Connect(c *gin.Context) {
	tables := []string{consts.TableBlogPosts, consts.TableGuestbook}
	if raw := c.Query("tables"); raw != "" {
		tables = strings.Split(raw, ",")
	}

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 汇聚多张表的订阅到一个通道
	notices := make(chan changeNotice, 16)
	subs := make([]*bus.Subscription, 0, len(tables))
	for _, table := range tables {
		sub := s.bus.Subscribe(table, bus.EventAll)
		subs = append(subs, sub)
		go func(table string, sub *bus.Subscription) {
			for ev := range sub.Events() {
				select {
				case notices <- changeNotice{Table: table, Event: ev.String()}:
				default:
				}
			}
		}(table, sub)
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	log.Info("WS 连接已建立", "tables", len(tables))

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：监听总线并推送至客户端
	for {
		select {
		case notice := <-notices:
			payload, err := json.Marshal(notice)
			if err != nil {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Error("WS 推送失败", "err", err)
				return
			}
		case <-stopChan:
			log.Info("WS 连接已断开")
			return
		}
	}
}
