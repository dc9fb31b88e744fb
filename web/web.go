// Package web provides the streamd HTTP server: routing, sessions,
// middleware and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"streamd/config"
	"streamd/database"
	"streamd/logger"
	"streamd/web/controller"
	"streamd/web/job"
	"streamd/web/middleware"
	"streamd/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the streamd web server with its controllers, services and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index    *controller.IndexController
	title    *controller.TitleController
	history  *controller.HistoryController
	playlist *controller.PlaylistController
	playback *controller.PlaybackController
	server   *controller.ServerController

	userService     *service.UserService
	titleService    *service.TitleService
	historyService  *service.HistoryService
	playlistService *service.PlaylistService
	playbackService *service.PlaybackService
	serverService   *service.ServerService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initServices wires every service to the shared database handle.
func (s *Server) initServices() {
	db := database.GetDB()
	s.userService = service.NewUserService(db)
	s.titleService = service.NewTitleService(db)
	s.historyService = service.NewHistoryService(db)
	s.playlistService = service.NewPlaylistService(db)
	s.playbackService = service.NewPlaybackService(s.titleService)
	s.serverService = service.NewServerService(s.userService, s.titleService)
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	store := cookie.NewStore([]byte(config.GetSessionSecret()))
	engine.Use(sessions.Sessions(config.GetName(), store))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.RequestCounter())

	g := engine.Group("/")
	s.index = controller.NewIndexController(g, s.userService)
	s.title = controller.NewTitleController(g, s.titleService)
	s.history = controller.NewHistoryController(g, s.historyService)
	s.playlist = controller.NewPlaylistController(g, s.playlistService)
	s.playback = controller.NewPlaybackController(g, s.playbackService)
	s.server = controller.NewServerController(g, s.serverService)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found", "data": gin.H{}})
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@every 5m", job.NewCheckpointJob())
	s.cron.AddJob("@daily", job.NewStatsJob(s.userService, s.titleService, s.historyService))
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	s.initServices()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	s.startTask()

	addr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve failed:", err)
		}
	}()

	logger.Infof("web server running on %s", listener.Addr().String())
	return nil
}

// Stop gracefully shuts down the server, the scheduler and flushes the
// database WAL.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}

	if checkpointErr := database.Checkpoint(); checkpointErr != nil {
		logger.Warning("checkpoint on shutdown failed:", checkpointErr)
	}
	return err
}

// GetCtx returns the server's root context.
func (s *Server) GetCtx() context.Context {
	return s.ctx
}
