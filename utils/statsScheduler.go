package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/services"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendDailyDigest computes the platform totals and mails them to the admin
func sendDailyDigest() {
	adminEmail := config.AppConfig.AdminEmail
	if adminEmail == "" {
		logScheduler("No admin email configured, skipping digest")
		return
	}

	stats, err := services.NewStatsService(database.Database.Db).GetStats()
	if err != nil {
		logScheduler("Error computing stats: " + err.Error())
		return
	}

	SendStatsDigestEmail(adminEmail,
		stats.NumberOfUsers,
		stats.NumberOfCourses,
		stats.NumberOfPublishedCourses,
		stats.NumberOfEnrollments)
	logScheduler("Daily digest dispatched to " + adminEmail)
}

// StartStatsScheduler runs the daily digest job at 07:00 server time
func StartStatsScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 7 * * *", sendDailyDigest); err != nil {
		log.Fatalf("Failed to schedule daily digest: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
