package services

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// nextModulePosition returns max(position)+1 over the course's non-deleted
// modules, or 1 on an empty course. Soft-deleted modules do not occupy a
// slot; their positions are parked outside the live range on delete.
// Must run on the same transaction as the insert it feeds: two concurrent
// creates can still compute the same value, the loser fails at the unique
// index and the conflict is surfaced to the caller.
func nextModulePosition(tx *gorm.DB, courseID uint) int {
	var maxPosition int
	tx.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition)
	return maxPosition + 1
}

// nextLessonPosition returns max(position)+1 over the module's lessons
func nextLessonPosition(tx *gorm.DB, moduleID uint) int {
	var maxPosition int
	tx.Model(&courseModels.Lesson{}).
		Where("module_id = ?", moduleID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition)
	return maxPosition + 1
}
