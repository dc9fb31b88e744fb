package service

import (
	"time"

	"streamd/config"
	"streamd/logger"
	"streamd/web/middleware"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// ServerStatus is the payload of the status endpoint.
type ServerStatus struct {
	Version  string  `json:"version"`
	Uptime   int64   `json:"uptime"`
	Requests int64   `json:"requests"`
	Users    int64   `json:"users"`
	Titles   int64   `json:"titles"`
	Cpu      float64 `json:"cpu"`
	MemUsed  uint64  `json:"mem_used"`
	MemTotal uint64  `json:"mem_total"`
}

// ServerService reports process and catalog statistics.
type ServerService struct {
	startTime    time.Time
	userService  *UserService
	titleService *TitleService
}

func NewServerService(userService *UserService, titleService *TitleService) *ServerService {
	return &ServerService{
		startTime:    time.Now(),
		userService:  userService,
		titleService: titleService,
	}
}

func (s *ServerService) Status() *ServerStatus {
	status := &ServerStatus{
		Version:  config.GetVersion(),
		Uptime:   int64(time.Since(s.startTime).Seconds()),
		Requests: middleware.RequestCount(),
	}

	if users, err := s.userService.Count(); err == nil {
		status.Users = users
	} else {
		logger.Warning("count users failed:", err)
	}
	if titles, err := s.titleService.Count(); err == nil {
		status.Titles = titles
	} else {
		logger.Warning("count titles failed:", err)
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status.Cpu = percents[0]
	}
	if v, err := mem.VirtualMemory(); err == nil {
		status.MemUsed = v.Used
		status.MemTotal = v.Total
	}

	return status
}
