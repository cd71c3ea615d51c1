package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant-nlu/internal/nlu"
	"voice-assistant-nlu/pkg/log"
)

// Handler is the public interface for the NLU HTTP delivery layer.
type Handler interface {
	ProcessText(c *gin.Context)
	ListDomains(c *gin.Context)
	SessionDetail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc nlu.UseCase
}

// New creates a new HTTP handler for the NLU domain.
func New(l log.Logger, uc nlu.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
