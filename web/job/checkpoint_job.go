// Package job contains the cron jobs scheduled by the web server.
package job

import (
	"streamd/database"
	"streamd/logger"
)

// CheckpointJob periodically flushes the sqlite WAL.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
