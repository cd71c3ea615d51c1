package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-assistant-nlu/internal/nlu"
	"voice-assistant-nlu/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Unknown errors surface as an opaque 500; known ones keep their message.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nlu.ErrUnknownDomain):
		response.NotFound(c, h.unknownDomainError(c))
	case errors.Is(err, nlu.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

// unknownDomainError names the loaded domains so the caller can pick one.
func (h *handler) unknownDomainError(c *gin.Context) error {
	out := h.uc.Domains(c.Request.Context())
	names := make([]string, len(out.Domains))
	for i, d := range out.Domains {
		names[i] = d.Name
	}
	return fmt.Errorf("unknown domain, available: %s", strings.Join(names, ", "))
}
