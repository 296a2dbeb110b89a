package api

import (
	"Showcase/internal/api/middleware"
	"Showcase/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Visitor & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.VisitorMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", group.BlogHandler.ListPosts)
			blogGroup.GET("/posts/:post_id", group.BlogHandler.OpenPost)
		}

		guestbookGroup := apiGroup.Group("/guestbook")
		{
			guestbookGroup.GET("/entries", group.GuestbookHandler.ListEntries)
			guestbookGroup.POST("/entries", group.GuestbookHandler.Sign)
			guestbookGroup.POST("/entries/:entry_id/like", group.GuestbookHandler.ToggleLike)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.POST("/visit", group.AnalyticsHandler.Visit)
		}

		contentGroup := apiGroup.Group("/content")
		{
			contentGroup.GET("/projects", group.ContentHandler.Projects)
			contentGroup.GET("/timeline", group.ContentHandler.Timeline)
			contentGroup.GET("/certifications", group.ContentHandler.Certifications)
		}

		contactGroup := apiGroup.Group("/contact")
		{
			contactGroup.POST("", group.ContactHandler.Send)
		}

		apiGroup.GET("/events", group.WSHandler.Connect)
	}

	return r
}
