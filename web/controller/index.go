package controller

import (
	"net/http"

	"streamd/logger"
	"streamd/util/common"
	"streamd/web/service"
	"streamd/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request body.
type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IndexController handles registration, login and logout.
type IndexController struct {
	BaseController

	userService *service.UserService
}

func NewIndexController(g *gin.RouterGroup, userService *service.UserService) *IndexController {
	a := &IndexController{userService: userService}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonErr(c, "invalid request body", common.BadRequestf("%v", err))
		return
	}
	if form.Username == "" || form.Email == "" || form.Password == "" {
		jsonErr(c, "invalid request body", common.BadRequestf("username, email and password are required"))
		return
	}

	user, err := a.userService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		jsonErr(c, "register failed", err)
		return
	}

	logger.Infof("user %q registered", user.Username)
	jsonMsg(c, http.StatusCreated, "User created successfully", user)
}

// login authenticates basic-auth credentials and establishes a cookie
// session. Any authentication failure is a 401, unknown users included.
func (a *IndexController) login(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok || username == "" || password == "" {
		c.Header("WWW-Authenticate", `Basic realm="login required"`)
		pureJsonMsg(c, http.StatusUnauthorized, "Could not verify")
		return
	}

	user, err := a.userService.Authenticate(username, password)
	if err != nil {
		logger.Warningf("failed login for %q from %s", username, c.ClientIP())
		c.Header("WWW-Authenticate", `Basic realm="login required"`)
		pureJsonMsg(c, http.StatusUnauthorized, "Could not verify")
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in successfully from %s", user.Username, c.ClientIP())
	jsonMsg(c, http.StatusOK, "Logged in successfully", user)
}

func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, http.StatusOK, "Logged out", nil)
}
