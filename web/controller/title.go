package controller

import (
	"net/http"

	"streamd/web/service"

	"github.com/gin-gonic/gin"
)

// TitleController exposes the read-only catalog routes.
type TitleController struct {
	BaseController

	titleService *service.TitleService
}

func NewTitleController(g *gin.RouterGroup, titleService *service.TitleService) *TitleController {
	a := &TitleController{titleService: titleService}
	a.initRouter(g)
	return a
}

func (a *TitleController) initRouter(g *gin.RouterGroup) {
	g.GET("/titles", a.list)
	g.GET("/titles/search", a.search)
	g.GET("/titles/:id", a.get)
}

func (a *TitleController) list(c *gin.Context) {
	titles, err := a.titleService.List()
	if err != nil {
		jsonErr(c, "list titles failed", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Titles found", gin.H{"titles": titles})
}

func (a *TitleController) search(c *gin.Context) {
	titles, err := a.titleService.Search(c.Query("query"))
	if err != nil {
		jsonErr(c, "search titles failed", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Titles found", gin.H{"titles": titles})
}

func (a *TitleController) get(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		jsonErr(c, "get title failed", err)
		return
	}

	title, err := a.titleService.Get(id)
	if err != nil {
		jsonErr(c, "Title not found", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Title found", title)
}
