package jobs

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/logger"
	"estatedesk-backend/internal/repository/postgres"
	"estatedesk-backend/internal/storage"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	store   *postgres.Store
	archive storage.ArchiveStore
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, archive storage.ArchiveStore, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:   store,
		archive: archive,
		config:  cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.PurgeTrashedProperties()
	jr.PurgeUploadArchives()
}
