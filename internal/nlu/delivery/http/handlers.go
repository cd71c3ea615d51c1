package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant-nlu/pkg/response"
)

// ProcessText godoc
// @Summary     Process one turn of text
// @Description Runs the utterance through extraction, intent classification, and dialogue state, and returns the assistant reply.
// @Tags        NLU
// @Accept      json
// @Produce     json
// @Param       body body processTextReq true "Turn data"
// @Success     200 {object} processTextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown domain"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/process/text [POST]
func (h *handler) ProcessText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleTurn(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProcessTextResp(output))
}

// ListDomains godoc
// @Summary     List loaded domains
// @Description Returns every loaded domain schema with its intent and slot counts.
// @Tags        NLU
// @Accept      json
// @Produce     json
// @Success     200 {object} listDomainsResp
// @Router      /api/v1/domains [GET]
func (h *handler) ListDomains(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Domains(ctx)
	response.OK(c, h.newListDomainsResp(output))
}

// SessionDetail godoc
// @Summary     Get session detail
// @Description Returns the caller's dialogue session for a domain, including accumulated slots and transcript.
// @Tags        NLU
// @Accept      json
// @Produce     json
// @Param       domain  path  string true  "Domain id"
// @Param       user_id query string true  "User id"
// @Success     200 {object} sessionDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{domain} [GET]
func (h *handler) SessionDetail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SessionSnapshot(ctx, req.scope(), req.Domain)
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionSnapshot: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionDetailResp(output))
}
