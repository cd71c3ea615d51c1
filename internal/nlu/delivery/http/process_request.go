package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processProcessTextReq binds and validates the process-text request body.
func (h *handler) processProcessTextReq(c *gin.Context) (processTextReq, error) {
	var req processTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionDetailReq binds the domain URI param and user query.
func (h *handler) processSessionDetailReq(c *gin.Context) (sessionDetailReq, error) {
	var req sessionDetailReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Domain = c.Param("domain")
	if req.Domain == "" {
		return req, errors.New("domain is required")
	}
	return req, req.validate()
}
