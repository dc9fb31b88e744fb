package controller

import (
	"net/http"

	"streamd/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes the operational status route. It sits behind
// the login session.
type ServerController struct {
	BaseController

	serverService *service.ServerService
}

func NewServerController(g *gin.RouterGroup, serverService *service.ServerService) *ServerController {
	a := &ServerController{serverService: serverService}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g.GET("/status", a.checkLogin, a.status)
}

func (a *ServerController) status(c *gin.Context) {
	jsonMsg(c, http.StatusOK, "Status", a.serverService.Status())
}
