package handler

import (
	"Showcase/internal/pkg/response"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogSvc service.BlogService
}

func NewBlogHandler(blogSvc service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogSvc: blogSvc,
	}
}

// ListPosts 文章列表，tag 过滤在快照内完成，不触发存储调用
func (h *BlogHandler) ListPosts(c *gin.Context) {
	tag := c.Query("tag")
	response.Success(c, h.blogSvc.List(tag))
}

// OpenPost 文章详情，打开即计一次浏览
func (h *BlogHandler) OpenPost(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := h.blogSvc.OpenPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
