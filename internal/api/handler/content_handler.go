package handler

import (
	"Showcase/internal/pkg/response"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (h *ContentHandler) Projects(c *gin.Context) {
	response.Success(c, h.contentSvc.Projects())
}

func (h *ContentHandler) Timeline(c *gin.Context) {
	response.Success(c, h.contentSvc.Timeline())
}

func (h *ContentHandler) Certifications(c *gin.Context) {
	response.Success(c, h.contentSvc.Certifications())
}
