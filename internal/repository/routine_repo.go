package repository

import (
	"context"

	"gorm.io/gorm"

	"class-routine/backend/internal/model"
)

// RoutineRepository 排课条目数据访问接口。
// 条目没有代理主键，更新与删除都以 7 字段自然键寻址；
// Update 不预检存在性，0 行受影响即视为记录不存在。
type RoutineRepository interface {
	List(ctx context.Context) ([]model.RoutineEntry, error)
	Create(ctx context.Context, entry *model.RoutineEntry) error
	// UpdateByKey 按变更前的自然键定位记录并整体覆盖字段（键字段本身也可被更新）
	UpdateByKey(ctx context.Context, original model.RoutineKey, entry *model.RoutineEntry) error
	DeleteByKey(ctx context.Context, key model.RoutineKey) error
}

type routineRepo struct {
	db *gorm.DB
}

// NewRoutineRepo 创建 RoutineRepository 实例
func NewRoutineRepo(db *gorm.DB) RoutineRepository {
	return &routineRepo{db: db}
}

// keyScope 把自然键展开为 WHERE 条件
func keyScope(db *gorm.DB, key model.RoutineKey) *gorm.DB {
	return db.Where(
		"day_of_week = ? AND slot_code = ? AND subject_offering_id = ? AND classroom_id = ? AND semester = ? AND section = ? AND academic_year = ?",
		key.DayOfWeek, key.SlotCode, key.SubjectOfferingID, key.ClassroomID,
		key.Semester, key.Section, key.AcademicYear,
	)
}

func (r *routineRepo) List(ctx context.Context) ([]model.RoutineEntry, error) {
	var entries []model.RoutineEntry
	err := r.db.WithContext(ctx).
		Order("day_of_week ASC, start_time ASC, slot_code ASC").
		Find(&entries).Error
	return entries, err
}

func (r *routineRepo) Create(ctx context.Context, entry *model.RoutineEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *routineRepo) UpdateByKey(ctx context.Context, original model.RoutineKey, entry *model.RoutineEntry) error {
	// 键列也可能变化，必须用 Updates + 显式列映射，而不是 Save（Save 会按新键寻址）
	result := keyScope(r.db.WithContext(ctx).Model(&model.RoutineEntry{}), original).
		Updates(map[string]interface{}{
			"day_of_week":         entry.DayOfWeek,
			"slot_code":           entry.SlotCode,
			"subject_offering_id": entry.SubjectOfferingID,
			"classroom_id":        entry.ClassroomID,
			"semester":            entry.Semester,
			"section":             entry.Section,
			"academic_year":       entry.AcademicYear,
			"start_time":          entry.StartTime,
			"end_time":            entry.EndTime,
			"is_lab_session":      entry.IsLabSession,
			"is_class_session":    entry.IsClassSession,
			"routine_count":       entry.RoutineCount,
			"class_teacher_id":    entry.ClassTeacherID,
			"session_year":        entry.SessionYear,
			"updated_by":          entry.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *routineRepo) DeleteByKey(ctx context.Context, key model.RoutineKey) error {
	// 硬删除：排课条目无软删除语义
	result := keyScope(r.db.WithContext(ctx), key).Delete(&model.RoutineEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
