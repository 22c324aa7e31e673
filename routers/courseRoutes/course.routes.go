package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the course, module, lesson, resource and
// enrollment routes. Write operations are gated to editors and admins.
func SetupCourseRoutes(app *fiber.App) {
	editorOrAdmin := middleware.RequireRoles(models.RoleEditor, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	courses := app.Group("/courses", middleware.JWTMiddleware)

	// Course aggregate
	courses.Post("/", editorOrAdmin, validators.CreateCourse(), controllers.CreateCourse)
	courses.Get("/", validators.CourseList(), controllers.ListCourses)
	courses.Get("/counts", controllers.CourseCounts)
	courses.Get("/:id", validators.CourseByID(), controllers.GetCourse)
	courses.Put("/:id", editorOrAdmin, validators.UpdateCourse(), controllers.UpdateCourse)
	courses.Delete("/:id", adminOnly, validators.CourseByID(), controllers.DeleteCourse)

	// Modules
	courses.Post("/:id/modules", editorOrAdmin, validators.CreateModule(), controllers.CreateModule)
	courses.Get("/:id/modules", validators.ListModules(), controllers.ListModules)
	courses.Post("/:id/modules/reorder", editorOrAdmin, validators.ReorderModules(), controllers.ReorderModules)
	courses.Get("/:course_id/modules/:module_id", validators.ModuleByID(), controllers.GetModule)
	courses.Put("/:course_id/modules/:module_id", editorOrAdmin, validators.UpdateModule(), controllers.UpdateModule)
	courses.Delete("/:course_id/modules/:module_id", editorOrAdmin, validators.ModuleByID(), controllers.DeleteModule)
	courses.Post("/:course_id/modules/:module_id/publish", editorOrAdmin, validators.ModuleByID(), controllers.PublishModule)
	courses.Post("/:course_id/modules/:module_id/unpublish", editorOrAdmin, validators.ModuleByID(), controllers.UnpublishModule)

	// Lessons
	modules := app.Group("/modules", middleware.JWTMiddleware)
	modules.Post("/:module_id/lessons", editorOrAdmin, validators.CreateLesson(), controllers.CreateLesson)
	modules.Get("/:module_id/lessons", validators.ListLessons(), controllers.ListLessons)
	modules.Post("/:module_id/lessons/reorder", editorOrAdmin, validators.ReorderLessons(), controllers.ReorderLessons)

	lessons := app.Group("/lessons", middleware.JWTMiddleware)
	lessons.Get("/:lesson_id", validators.LessonByID(), controllers.GetLesson)
	lessons.Put("/:lesson_id", editorOrAdmin, validators.UpdateLesson(), controllers.UpdateLesson)
	lessons.Delete("/:lesson_id", editorOrAdmin, validators.LessonByID(), controllers.DeleteLesson)

	// Resources
	courses.Post("/:id/resources", editorOrAdmin, validators.CreateResource(), controllers.CreateResource)
	courses.Get("/:id/resources", validators.ListResources(), controllers.ListResources)
	courses.Get("/:course_id/resources/type/:type", validators.ResourcesByType(), controllers.ListResourcesByType)
	courses.Get("/:course_id/resources/:resource_id", validators.ResourceByID(), controllers.GetResource)
	courses.Put("/:course_id/resources/:resource_id", editorOrAdmin, validators.UpdateResource(), controllers.UpdateResource)
	courses.Delete("/:course_id/resources/:resource_id", editorOrAdmin, validators.ResourceByID(), controllers.DeleteResource)
	courses.Post("/:course_id/resources/:resource_id/download", validators.ResourceByID(), controllers.DownloadResource)
	courses.Post("/:course_id/resources/:resource_id/toggle", editorOrAdmin, validators.ResourceByID(), controllers.ToggleResource)
	courses.Get("/:course_id/resources/:resource_id/verify", editorOrAdmin, validators.ResourceByID(), controllers.VerifyResourceURL)

	// Enrollment
	courses.Post("/:id/enroll", validators.EnrollCourse(), controllers.EnrollInCourse)
	courses.Get("/:id/enrollments", editorOrAdmin, validators.CourseByID(), controllers.CourseEnrollments)

	enrollments := app.Group("/enrollments", middleware.JWTMiddleware)
	enrollments.Post("/:id/complete", validators.EnrollmentByID(), controllers.CompleteEnrollment)
	enrollments.Post("/:id/cancel", validators.EnrollmentByID(), controllers.CancelEnrollment)
	enrollments.Delete("/:id", adminOnly, validators.EnrollmentByID(), controllers.DeleteEnrollment)

	my := app.Group("/my", middleware.JWTMiddleware)
	my.Get("/enrollments", controllers.MyEnrollments)

	// Admin dashboard
	dashboard := app.Group("/admin/dashboard", middleware.JWTMiddleware, adminOnly)
	dashboard.Get("/stats", controllers.AdminDashboardStats)
}
