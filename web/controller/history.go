package controller

import (
	"net/http"

	"streamd/util/common"
	"streamd/web/service"

	"github.com/gin-gonic/gin"
)

// HistoryForm represents the history/add request body.
type HistoryForm struct {
	UserId  int `json:"user_id"`
	TitleId int `json:"title_id"`
}

// HistoryController exposes the viewing-history ledger.
type HistoryController struct {
	BaseController

	historyService *service.HistoryService
}

func NewHistoryController(g *gin.RouterGroup, historyService *service.HistoryService) *HistoryController {
	a := &HistoryController{historyService: historyService}
	a.initRouter(g)
	return a
}

func (a *HistoryController) initRouter(g *gin.RouterGroup) {
	g.POST("/history/add", a.add)
	g.GET("/history/:user_id", a.list)
}

func (a *HistoryController) add(c *gin.Context) {
	var form HistoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonErr(c, "invalid request body", common.BadRequestf("%v", err))
		return
	}
	if form.UserId <= 0 || form.TitleId <= 0 {
		jsonErr(c, "invalid request body", common.BadRequestf("user_id and title_id are required"))
		return
	}

	entry, err := a.historyService.Record(form.UserId, form.TitleId)
	if err != nil {
		jsonErr(c, "User or title not found", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Title added to viewing history", entry)
}

func (a *HistoryController) list(c *gin.Context) {
	userId, err := pathId(c, "user_id")
	if err != nil {
		jsonErr(c, "list history failed", err)
		return
	}

	entries, err := a.historyService.ListByUser(userId)
	if err != nil {
		jsonErr(c, "list history failed", err)
		return
	}
	jsonMsg(c, http.StatusOK, "History found", gin.H{"history": entries})
}
