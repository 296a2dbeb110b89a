package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorKey 上下文中的访客标识 Key
const VisitorKey = "visitor_id"

const visitorCookieMaxAge = 365 * 24 * 60 * 60

// VisitorMiddleware 为匿名访客分配稳定标识。点赞集合按访客维度持久化，
// 同一浏览器刷新后点赞状态不丢失
func VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(VisitorKey)
		if err != nil || visitorID == "" {
			visitorID = uuid.NewString()
			c.SetCookie(VisitorKey, visitorID, visitorCookieMaxAge, "/", "", false, true)
		}

		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}
