package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant-nlu/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The turn
// endpoint is rate limited; read-only listings are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	process := rg.Group("/process")
	{
		process.POST("/text", mw.RateLimit(), h.ProcessText)
	}

	rg.GET("/domains", h.ListDomains)
	rg.GET("/sessions/:domain", mw.RateLimit(), h.SessionDetail)
}
