package handler

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/pkg/response"
	"Showcase/internal/pkg/util"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

// Send 联系表单提交
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.contactSvc.Send(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
