package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the caller in a course. Ordinary users can only
// join published courses.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	enrollment, err := services.NewEnrollmentService(database.Database.Db).Enroll(userID, courseID, role)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to enroll in course!")
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err == nil {
		if course, err := services.NewCourseService(database.Database.Db).FindByID(courseID); err == nil {
			utils.SendEnrollmentEmail(user.Email, user.Name, course.Name)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// MyEnrollments lists the caller's enrollments
func MyEnrollments(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := services.NewEnrollmentService(database.Database.Db).FindByUser(userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// CourseEnrollments lists all enrollments of a course
func CourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	enrollments, err := services.NewEnrollmentService(database.Database.Db).FindByCourse(courseID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// ownEnrollment loads the enrollment and checks the caller may act on it.
// When the caller may not, the response is rendered, its error comes back,
// and svc is nil.
func ownEnrollment(c *fiber.Ctx) (*services.EnrollmentService, uint, error) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return nil, 0, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enrollmentID := c.Locals("enrollmentID").(uint)

	svc := services.NewEnrollmentService(database.Database.Db)
	enrollment, err := svc.FindOne(enrollmentID)
	if err != nil {
		return nil, 0, serviceErrorResponse(c, err, "Failed to fetch enrollment!")
	}

	if enrollment.UserID != userID && !models.IsPrivileged(role) {
		return nil, 0, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
	return svc, enrollmentID, nil
}

// CompleteEnrollment marks an enrollment completed
func CompleteEnrollment(c *fiber.Ctx) error {
	svc, enrollmentID, respErr := ownEnrollment(c)
	if svc == nil {
		return respErr
	}

	enrollment, err := svc.Complete(enrollmentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to complete enrollment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed successfully!", enrollment)
}

// CancelEnrollment marks an enrollment cancelled
func CancelEnrollment(c *fiber.Ctx) error {
	svc, enrollmentID, respErr := ownEnrollment(c)
	if svc == nil {
		return respErr
	}

	enrollment, err := svc.Cancel(enrollmentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to cancel enrollment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", enrollment)
}

// DeleteEnrollment removes an enrollment record entirely, freeing the user
// to enroll again
func DeleteEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	if err := services.NewEnrollmentService(database.Database.Db).Delete(enrollmentID); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete enrollment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
}
