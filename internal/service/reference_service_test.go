package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"class-routine/backend/internal/model"
	"class-routine/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestReferenceService() (ReferenceService, *repository.Repository) {
	repo := newTestRepository(newMockRoutineRepo())
	svc := NewReferenceService(repo, zap.NewNop())
	return svc, repo
}

// ── 列表测试 ──

func TestReferenceService_ListSubjectOfferings(t *testing.T) {
	svc, repo := setupTestReferenceService()
	repo.SubjectOffering.(*mockSubjectOfferingRepo).offerings = []model.SubjectOffering{
		{SubjectOfferingID: "SO-101", SubjectCode: "CS101", SubjectName: "数据结构"},
	}

	offerings := svc.ListSubjectOfferings(context.Background())
	if len(offerings) != 1 || offerings[0].SubjectOfferingID != "SO-101" {
		t.Errorf("期望 1 条 SO-101，实际=%v", offerings)
	}
}

func TestReferenceService_DegradeToEmptyOnError(t *testing.T) {
	svc, repo := setupTestReferenceService()
	dbErr := errors.New("connection refused")
	repo.SubjectOffering.(*mockSubjectOfferingRepo).listErr = dbErr
	repo.Classroom.(*mockClassroomRepo).listErr = dbErr
	repo.Teacher.(*mockTeacherRepo).listErr = dbErr
	repo.AcademicYear.(*mockAcademicYearRepo).listErr = dbErr

	// 任一参考数据取数失败都降级为空集合，绝不向上传播
	if got := svc.ListSubjectOfferings(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("期望空集合，实际=%v", got)
	}
	if got := svc.ListClassrooms(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("期望空集合，实际=%v", got)
	}
	if got := svc.ListTeachers(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("期望空集合，实际=%v", got)
	}
	if got := svc.ListAcademicYears(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("期望空集合，实际=%v", got)
	}
}

// ── Cohorts 测试 ──

func TestReferenceService_Cohorts_NumericSemesterSort(t *testing.T) {
	svc, repo := setupTestReferenceService()
	student := repo.Student.(*mockStudentRepo)
	student.semesters = []string{"10", "2", "1"}
	student.sections = []string{"B", "A"}

	cohorts := svc.Cohorts(context.Background())

	// 全数字学期按数值排序（字典序会把 10 排在 2 前面）
	want := []string{"1", "2", "10"}
	for i, s := range want {
		if cohorts.Semesters[i] != s {
			t.Fatalf("期望学期顺序 %v，实际=%v", want, cohorts.Semesters)
		}
	}
	if cohorts.Sections[0] != "A" || cohorts.Sections[1] != "B" {
		t.Errorf("分班应按字典序，实际=%v", cohorts.Sections)
	}
}

func TestReferenceService_Cohorts_LexicographicFallback(t *testing.T) {
	svc, repo := setupTestReferenceService()
	repo.Student.(*mockStudentRepo).semesters = []string{"Spring", "Fall", "10"}

	cohorts := svc.Cohorts(context.Background())

	// 出现非数字取值时整体回退为字典序
	want := []string{"10", "Fall", "Spring"}
	for i, s := range want {
		if cohorts.Semesters[i] != s {
			t.Fatalf("期望学期顺序 %v，实际=%v", want, cohorts.Semesters)
		}
	}
}

func TestReferenceService_Cohorts_DegradeToEmpty(t *testing.T) {
	svc, repo := setupTestReferenceService()
	student := repo.Student.(*mockStudentRepo)
	student.semestersErr = errors.New("connection refused")
	student.sectionsErr = errors.New("connection refused")

	cohorts := svc.Cohorts(context.Background())
	if cohorts.Semesters == nil || len(cohorts.Semesters) != 0 {
		t.Errorf("期望空学期集合，实际=%v", cohorts.Semesters)
	}
	if cohorts.Sections == nil || len(cohorts.Sections) != 0 {
		t.Errorf("期望空分班集合，实际=%v", cohorts.Sections)
	}
}
