package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the JSON chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFormReq binds and validates the web form submission.
func (h *handler) processFormReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
