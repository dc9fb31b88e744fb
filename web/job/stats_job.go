package job

import (
	"streamd/logger"
	"streamd/web/service"
)

// StatsJob writes a daily log line with catalog and ledger sizes.
type StatsJob struct {
	userService    *service.UserService
	titleService   *service.TitleService
	historyService *service.HistoryService
}

func NewStatsJob(userService *service.UserService, titleService *service.TitleService, historyService *service.HistoryService) *StatsJob {
	return &StatsJob{
		userService:    userService,
		titleService:   titleService,
		historyService: historyService,
	}
}

func (j *StatsJob) Run() {
	users, err := j.userService.Count()
	if err != nil {
		logger.Warning("stats: count users failed:", err)
		return
	}
	titles, err := j.titleService.Count()
	if err != nil {
		logger.Warning("stats: count titles failed:", err)
		return
	}
	entries, err := j.historyService.Count()
	if err != nil {
		logger.Warning("stats: count history failed:", err)
		return
	}
	logger.Infof("catalog stats: %d users, %d titles, %d history entries", users, titles, entries)
}
