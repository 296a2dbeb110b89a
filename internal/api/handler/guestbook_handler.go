package handler

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/api/middleware"
	"Showcase/internal/pkg/response"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
)

type GuestbookHandler struct {
	guestbookSvc service.GuestbookService
}

func NewGuestbookHandler(guestbookSvc service.GuestbookService) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookSvc: guestbookSvc,
	}
}

// ListEntries 留言列表
func (h *GuestbookHandler) ListEntries(c *gin.Context) {
	visitorID := c.GetString(middleware.VisitorKey)
	response.Success(c, h.guestbookSvc.List(c.Request.Context(), visitorID))
}

// Sign 提交留言
func (h *GuestbookHandler) Sign(c *gin.Context) {
	var req dto.SignGuestbookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.guestbookSvc.Sign(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleLike 点赞开关
func (h *GuestbookHandler) ToggleLike(c *gin.Context) {
	visitorID := c.GetString(middleware.VisitorKey)
	entryID := c.Param("entry_id")
	if entryID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	entry, err := h.guestbookSvc.ToggleLike(c.Request.Context(), visitorID, entryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entry)
}
