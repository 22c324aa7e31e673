package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns platform-wide totals for the admin dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	stats, err := services.NewStatsService(database.Database.Db).GetStats()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
