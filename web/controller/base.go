// Package controller provides the HTTP request handlers for the streamd
// API, mapping routes to the stores and store errors to status codes.
package controller

import (
	"net/http"

	"streamd/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// checkLogin rejects requests that do not carry a login session. Only
// the operational status route uses it; the public API is
// authentication-free.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, "login required")
		c.Abort()
		return
	}
	c.Next()
}
