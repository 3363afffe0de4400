package service

import (
	"context"

	"gorm.io/gorm"

	"class-routine/backend/internal/model"
	"class-routine/backend/internal/repository"
)

// ── Mock RoutineRepository ──
//
// 有序切片模拟存储，保持插入顺序（网格并列条目依赖上游顺序）。
// 复合唯一约束与"按原键更新"的行为对齐真实 Postgres 存储。

type mockRoutineRepo struct {
	entries []model.RoutineEntry

	listErr   error
	createErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func newMockRoutineRepo() *mockRoutineRepo {
	return &mockRoutineRepo{}
}

func (m *mockRoutineRepo) indexOf(key model.RoutineKey) int {
	for i := range m.entries {
		if m.entries[i].Key() == key {
			return i
		}
	}
	return -1
}

func (m *mockRoutineRepo) List(_ context.Context) ([]model.RoutineEntry, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.RoutineEntry, len(m.entries))
	copy(result, m.entries)
	return result, nil
}

func (m *mockRoutineRepo) Create(_ context.Context, entry *model.RoutineEntry) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if m.indexOf(entry.Key()) >= 0 {
		return gorm.ErrDuplicatedKey
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockRoutineRepo) UpdateByKey(_ context.Context, original model.RoutineKey, entry *model.RoutineEntry) error {
	m.updateCalls++
	idx := m.indexOf(original)
	if idx < 0 {
		return gorm.ErrRecordNotFound
	}
	if other := m.indexOf(entry.Key()); other >= 0 && other != idx {
		return gorm.ErrDuplicatedKey
	}
	m.entries[idx] = *entry
	return nil
}

func (m *mockRoutineRepo) DeleteByKey(_ context.Context, key model.RoutineKey) error {
	m.deleteCalls++
	idx := m.indexOf(key)
	if idx < 0 {
		return gorm.ErrRecordNotFound
	}
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock 参考数据 Repository ──

type mockSubjectOfferingRepo struct {
	offerings []model.SubjectOffering
	listErr   error
}

func newMockSubjectOfferingRepo() *mockSubjectOfferingRepo {
	return &mockSubjectOfferingRepo{}
}

func (m *mockSubjectOfferingRepo) List(_ context.Context) ([]model.SubjectOffering, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.offerings, nil
}

func (m *mockSubjectOfferingRepo) GetByID(_ context.Context, id string) (*model.SubjectOffering, error) {
	for i := range m.offerings {
		if m.offerings[i].SubjectOfferingID == id {
			return &m.offerings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockClassroomRepo struct {
	rooms   []model.Classroom
	listErr error
}

func newMockClassroomRepo() *mockClassroomRepo { return &mockClassroomRepo{} }

func (m *mockClassroomRepo) List(_ context.Context) ([]model.Classroom, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rooms, nil
}

type mockTeacherRepo struct {
	teachers []model.Teacher
	listErr  error
}

func newMockTeacherRepo() *mockTeacherRepo { return &mockTeacherRepo{} }

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.teachers, nil
}

type mockAcademicYearRepo struct {
	years   []model.AcademicYear
	listErr error
}

func newMockAcademicYearRepo() *mockAcademicYearRepo { return &mockAcademicYearRepo{} }

func (m *mockAcademicYearRepo) List(_ context.Context) ([]model.AcademicYear, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.years, nil
}

type mockStudentRepo struct {
	semesters []string
	sections  []string

	semestersErr error
	sectionsErr  error
}

func newMockStudentRepo() *mockStudentRepo { return &mockStudentRepo{} }

func (m *mockStudentRepo) DistinctSemesters(_ context.Context) ([]string, error) {
	if m.semestersErr != nil {
		return nil, m.semestersErr
	}
	return m.semesters, nil
}

func (m *mockStudentRepo) DistinctSections(_ context.Context) ([]string, error) {
	if m.sectionsErr != nil {
		return nil, m.sectionsErr
	}
	return m.sections, nil
}

// ── 聚合 ──

func newTestRepository(routine *mockRoutineRepo) *repository.Repository {
	return &repository.Repository{
		Routine:         routine,
		User:            newMockUserRepo(),
		SubjectOffering: newMockSubjectOfferingRepo(),
		Classroom:       newMockClassroomRepo(),
		Teacher:         newMockTeacherRepo(),
		AcademicYear:    newMockAcademicYearRepo(),
		Student:         newMockStudentRepo(),
	}
}
