package handler

import (
	"Showcase/internal/api/middleware"
	"Showcase/internal/pkg/response"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// Visit 记录一次页面访问并返回计数。会话标识优先取前端
// 显式传的 X-Session-ID，缺省退化为访客标识
func (h *AnalyticsHandler) Visit(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = c.GetString(middleware.VisitorKey)
	}

	response.Success(c, h.analyticsSvc.RecordVisit(c.Request.Context(), sessionID))
}
