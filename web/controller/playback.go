package controller

import (
	"net/http"

	"streamd/web/service"

	"github.com/gin-gonic/gin"
)

// PlaybackController validates playback requests and hands out signed
// playback tickets.
type PlaybackController struct {
	BaseController

	playbackService *service.PlaybackService
}

func NewPlaybackController(g *gin.RouterGroup, playbackService *service.PlaybackService) *PlaybackController {
	a := &PlaybackController{playbackService: playbackService}
	a.initRouter(g)
	return a
}

func (a *PlaybackController) initRouter(g *gin.RouterGroup) {
	g.GET("/playback/:id", a.start)
}

func (a *PlaybackController) start(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		jsonErr(c, "playback failed", err)
		return
	}

	ticket, err := a.playbackService.Start(id)
	if err != nil {
		jsonErr(c, "Title not found", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Playback started", ticket)
}
