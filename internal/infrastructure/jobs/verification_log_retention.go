package jobs

import (
	"context"
	"log"
	"time"
)

type verificationLogPruner interface {
	DeleteOlderThan(ctx context.Context, cutoffDays int) (int64, error)
}

// VerificationLogRetentionJob prunes old verification audit log entries
type VerificationLogRetentionJob struct {
	repo          verificationLogPruner
	retentionDays int
	interval      time.Duration
	stop          chan struct{}
}

func NewVerificationLogRetentionJob(repo verificationLogPruner, retentionDays int, interval time.Duration) *VerificationLogRetentionJob {
	return &VerificationLogRetentionJob{
		repo:          repo,
		retentionDays: retentionDays,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

func (j *VerificationLogRetentionJob) Start(ctx context.Context) {
	log.Println("🕐 Starting verification log retention job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Verification log retention job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Verification log retention job stopped")
			return
		case <-ticker.C:
			j.pruneOldLogs(ctx)
		}
	}
}

func (j *VerificationLogRetentionJob) Stop() {
	close(j.stop)
}

func (j *VerificationLogRetentionJob) pruneOldLogs(ctx context.Context) {
	deleted, err := j.repo.DeleteOlderThan(ctx, j.retentionDays)
	if err != nil {
		log.Printf("❌ Error pruning verification logs: %v", err)
		return
	}

	if deleted == 0 {
		return
	}

	log.Printf("✅ Pruned %d verification log entries older than %d days", deleted, j.retentionDays)
}
