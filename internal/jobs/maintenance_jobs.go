package jobs

import (
	"context"
	"time"

	"estatedesk-backend/internal/logger"
)

// PurgeTrashedProperties permanently removes properties that have been in the
// trash longer than the configured retention.
func (jr *JobRunner) PurgeTrashedProperties() {
	jr.runWithRecovery("PurgeTrashedProperties", func() {
		ctx := context.Background()
		retention := jr.config.Upload.TrashRetentionDays
		cutoff := time.Now().AddDate(0, 0, -retention)

		purged, err := jr.store.PurgeTrashedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge trashed properties", "error", err)
			return
		}
		logger.Info("Purged trashed properties", "count", purged, "cutoff", cutoff.Format("2006-01-02"))
	})
}

// PurgeUploadArchives deletes upload audit rows past their TTL together with
// the archived CSV payloads they reference.
func (jr *JobRunner) PurgeUploadArchives() {
	jr.runWithRecovery("PurgeUploadArchives", func() {
		ctx := context.Background()
		ttl := jr.config.Upload.ArchiveTTLDays
		cutoff := time.Now().AddDate(0, 0, -ttl)

		references, err := jr.store.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to delete expired upload records", "error", err)
			return
		}

		deleted := 0
		for _, ref := range references {
			if err := jr.archive.Delete(ctx, ref); err != nil {
				logger.Error("Failed to delete archived payload", "reference", ref, "error", err)
				continue
			}
			deleted++
		}
		logger.Info("Purged upload archives", "records", len(references), "files_deleted", deleted)
	})
}
