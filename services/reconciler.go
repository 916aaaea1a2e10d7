package services

import (
	"log"

	"movecrm-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartStatsReconciler schedules a nightly pass that re-runs the statistics
// recalculation for every client. The per-request recomputation already keeps
// the derived fields correct; this is a safety net against writes that raced
// each other (last recompute wins, see the update handlers).
func StartStatsReconciler(db *gorm.DB) {
	c := cron.New()

	// Every day at 3 AM
	c.AddFunc("0 3 * * *", func() {
		ReconcileAllClientStats(db)
	})

	c.Start()
	log.Println("Stats reconciler started")
}

// ReconcileAllClientStats recomputes the derived statistics of every client.
func ReconcileAllClientStats(db *gorm.DB) {
	log.Println("Starting client stats reconciliation...")

	var ids []uuid.UUID
	if err := db.Model(&models.Client{}).Pluck("id", &ids).Error; err != nil {
		log.Printf("Failed to list clients for reconciliation: %v", err)
		return
	}

	for _, id := range ids {
		if err := RecalculateClientStats(db, id); err != nil {
			log.Printf("Client %s: stats reconciliation failed: %v", id, err)
		}
	}

	log.Printf("Client stats reconciliation completed (%d clients)", len(ids))
}
