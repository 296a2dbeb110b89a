package api

import "Showcase/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	BlogHandler      *handler.BlogHandler
	GuestbookHandler *handler.GuestbookHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ContentHandler   *handler.ContentHandler
	ContactHandler   *handler.ContactHandler
	WSHandler        *handler.WsHandler
}
