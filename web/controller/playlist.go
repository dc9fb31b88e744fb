package controller

import (
	"net/http"

	"streamd/util/common"
	"streamd/web/service"

	"github.com/gin-gonic/gin"
)

// PlaylistCreateForm represents the playlist/create request body.
type PlaylistCreateForm struct {
	UserId int    `json:"user_id"`
	Name   string `json:"name"`
}

// PlaylistAddForm represents the playlist/add_title request body.
type PlaylistAddForm struct {
	PlaylistId int `json:"playlist_id"`
	TitleId    int `json:"title_id"`
}

// PlaylistController exposes the playlist manager.
type PlaylistController struct {
	BaseController

	playlistService *service.PlaylistService
}

func NewPlaylistController(g *gin.RouterGroup, playlistService *service.PlaylistService) *PlaylistController {
	a := &PlaylistController{playlistService: playlistService}
	a.initRouter(g)
	return a
}

func (a *PlaylistController) initRouter(g *gin.RouterGroup) {
	g.POST("/playlist/create", a.create)
	g.POST("/playlist/add_title", a.addTitle)
	g.GET("/playlist/:id", a.get)
}

func (a *PlaylistController) create(c *gin.Context) {
	var form PlaylistCreateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonErr(c, "invalid request body", common.BadRequestf("%v", err))
		return
	}
	if form.UserId <= 0 || form.Name == "" {
		jsonErr(c, "invalid request body", common.BadRequestf("user_id and name are required"))
		return
	}

	playlist, err := a.playlistService.Create(form.UserId, form.Name)
	if err != nil {
		jsonErr(c, "User not found", err)
		return
	}
	jsonMsg(c, http.StatusCreated, "Playlist created successfully", playlist)
}

func (a *PlaylistController) addTitle(c *gin.Context) {
	var form PlaylistAddForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonErr(c, "invalid request body", common.BadRequestf("%v", err))
		return
	}
	if form.PlaylistId <= 0 || form.TitleId <= 0 {
		jsonErr(c, "invalid request body", common.BadRequestf("playlist_id and title_id are required"))
		return
	}

	entry, err := a.playlistService.AddTitle(form.PlaylistId, form.TitleId)
	if err != nil {
		jsonErr(c, "Playlist or title not found", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Title added to playlist", entry)
}

func (a *PlaylistController) get(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		jsonErr(c, "get playlist failed", err)
		return
	}

	playlist, entries, err := a.playlistService.Get(id)
	if err != nil {
		jsonErr(c, "Playlist not found", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Playlist found", gin.H{
		"playlist": playlist,
		"titles":   entries,
	})
}
