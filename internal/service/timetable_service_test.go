package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"class-routine/backend/internal/dto"
	"class-routine/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestTimetableService() (TimetableService, *mockRoutineRepo) {
	routineRepo := newMockRoutineRepo()
	svc := NewTimetableService(newTestRepository(routineRepo), zap.NewNop())
	return svc, routineRepo
}

func testEntry(day, subject, room, start, end, teacherID string) model.RoutineEntry {
	return model.RoutineEntry{
		DayOfWeek:         day,
		SlotCode:          "A1",
		SubjectOfferingID: subject,
		ClassroomID:       room,
		Semester:          "5",
		Section:           "A",
		AcademicYear:      "2025",
		StartTime:         start,
		EndTime:           end,
		ClassTeacherID:    teacherID,
	}
}

func cellEntries(tt *dto.TimetableResponse, day string, hour int) []dto.RoutineEntryResponse {
	for _, row := range tt.Grid {
		if row.Day != day {
			continue
		}
		for _, cell := range row.Cells {
			if cell.Hour == hour {
				return cell.Entries
			}
		}
	}
	return nil
}

// ── 行归属测试 ──

func TestEntriesAt_SingleHour(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
	}

	// 09:00~10:00 只占 9 点行：9 <= 9 < 10，而 10 < 10 不成立
	if got := EntriesAt(entries, "Monday", 9); len(got) != 1 {
		t.Errorf("9 点行期望 1 条，实际=%d", len(got))
	}
	if got := EntriesAt(entries, "Monday", 10); len(got) != 0 {
		t.Errorf("10 点行期望 0 条，实际=%d", len(got))
	}
	if got := EntriesAt(entries, "Monday", 8); len(got) != 0 {
		t.Errorf("8 点行期望 0 条，实际=%d", len(got))
	}
	if got := EntriesAt(entries, "Tuesday", 9); len(got) != 0 {
		t.Errorf("其他星期不应出现该条目，实际=%d", len(got))
	}
}

func TestEntriesAt_HalfHourBoundaries(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:30", "11:00", "T1"),
	}

	// Comparable(09:30)=9.5：9.5 <= 9 不成立，条目不占 9 点行
	if got := EntriesAt(entries, "Monday", 9); len(got) != 0 {
		t.Errorf("9 点行期望 0 条，实际=%d", len(got))
	}
	// 9.5 <= 10 < 11 成立
	if got := EntriesAt(entries, "Monday", 10); len(got) != 1 {
		t.Errorf("10 点行期望 1 条，实际=%d", len(got))
	}
	if got := EntriesAt(entries, "Monday", 11); len(got) != 0 {
		t.Errorf("11 点行期望 0 条，实际=%d", len(got))
	}
}

func TestEntriesAt_MissingTimesFallOutside(t *testing.T) {
	// 缺失时刻编码为 0（午夜），落在 8~18 行区间之外
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "", "", "T1"),
	}

	for _, hour := range HourRows() {
		if got := EntriesAt(entries, "Monday", hour); len(got) != 0 {
			t.Errorf("缺失时刻条目不应出现在 %d 点行", hour)
		}
	}
}

func TestEntriesAt_PreservesOrder(t *testing.T) {
	// 同格多条目（并行教室）保持上游顺序并列
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2"),
	}

	got := EntriesAt(entries, "Monday", 9)
	if len(got) != 2 {
		t.Fatalf("期望 2 条并列，实际=%d", len(got))
	}
	if got[0].SubjectOfferingID != "SO-101" || got[1].SubjectOfferingID != "SO-102" {
		t.Error("并列条目应保持上游顺序")
	}
}

// ── 可见性裁剪测试 ──

func TestVisibleEntries_TeacherScoping(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2"),
		testEntry("Tuesday", "SO-103", "ROOM-1", "09:00", "10:00", ""),
	}

	viewer := ViewerContext{Role: model.RoleTeacher, TeacherID: "T1"}
	visible := VisibleEntries(entries, viewer, RefinementFilter{})

	if len(visible) != 1 {
		t.Fatalf("teacher 应只见 1 条，实际=%d", len(visible))
	}
	if visible[0].SubjectOfferingID != "SO-101" {
		t.Errorf("期望 SO-101，实际=%s", visible[0].SubjectOfferingID)
	}
}

func TestVisibleEntries_TeacherScopingTrimsSpace(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", " T1 "),
	}

	viewer := ViewerContext{Role: model.RoleTeacher, TeacherID: "T1"}
	if got := VisibleEntries(entries, viewer, RefinementFilter{}); len(got) != 1 {
		t.Errorf("首尾空白应在匹配前归一化，实际可见=%d", len(got))
	}
}

func TestVisibleEntries_TeacherWithEmptyIDSeesUnassigned(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", ""),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2"),
	}

	// 教师 id 为空的 teacher 账号只匹配未指派条目（空串 == 空串）
	viewer := ViewerContext{Role: model.RoleTeacher, TeacherID: ""}
	visible := VisibleEntries(entries, viewer, RefinementFilter{})
	if len(visible) != 1 || visible[0].SubjectOfferingID != "SO-101" {
		t.Errorf("期望只见未指派条目，实际=%v", visible)
	}
}

func TestVisibleEntries_AdminSeesAll(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2"),
	}

	viewer := ViewerContext{Role: model.RoleAdmin}
	if got := VisibleEntries(entries, viewer, RefinementFilter{}); len(got) != 2 {
		t.Errorf("admin 应见全部条目，实际=%d", len(got))
	}
}

func TestVisibleEntries_AdminCourseRefinement(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2"),
	}

	viewer := ViewerContext{Role: model.RoleAdmin}
	visible := VisibleEntries(entries, viewer, RefinementFilter{CourseID: "SO-102"})
	if len(visible) != 1 || visible[0].SubjectOfferingID != "SO-102" {
		t.Errorf("期望仅 SO-102，实际=%v", visible)
	}
}

func TestVisibleEntries_AcademicYearMatchesLegacyAlias(t *testing.T) {
	legacy := testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1")
	legacy.AcademicYear = "2024"
	legacy.SessionYear = "2025" // 仅遗留列携带目标学年

	current := testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T2")
	current.AcademicYear = "2025"

	other := testEntry("Tuesday", "SO-103", "ROOM-1", "09:00", "10:00", "T1")
	other.AcademicYear = "2023"

	viewer := ViewerContext{Role: model.RoleAdmin}
	visible := VisibleEntries([]model.RoutineEntry{legacy, current, other}, viewer,
		RefinementFilter{AcademicYear: "2025"})

	if len(visible) != 2 {
		t.Fatalf("主列或遗留列命中都应保留，期望 2 条，实际=%d", len(visible))
	}
}

func TestVisibleEntries_RefinementSkippedForNonAdmin(t *testing.T) {
	entries := []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
		testEntry("Monday", "SO-102", "ROOM-2", "09:00", "10:00", "T1"),
	}

	// teacher 角色即使携带筛选值也整体跳过细化筛选
	viewer := ViewerContext{Role: model.RoleTeacher, TeacherID: "T1"}
	visible := VisibleEntries(entries, viewer, RefinementFilter{CourseID: "SO-102"})
	if len(visible) != 2 {
		t.Errorf("非 admin 的筛选值应被跳过，期望 2 条，实际=%d", len(visible))
	}
}

// ── BuildTimetable 测试 ──

func TestTimetableService_BuildTimetable_GridShape(t *testing.T) {
	svc, _ := setupTestTimetableService()

	tt, err := svc.BuildTimetable(context.Background(), ViewerContext{Role: model.RoleAdmin}, &dto.TimetableRequest{})
	if err != nil {
		t.Fatalf("BuildTimetable 应成功: %v", err)
	}

	if len(tt.Days) != 6 {
		t.Errorf("期望 6 天，实际=%d", len(tt.Days))
	}
	if len(tt.Hours) != 11 {
		t.Errorf("期望 11 个整点行，实际=%d", len(tt.Hours))
	}
	if tt.Hours[0] != 8 || tt.Hours[len(tt.Hours)-1] != 18 {
		t.Errorf("整点行应为 8..18，实际=%v", tt.Hours)
	}
	if len(tt.Grid) != 6 {
		t.Errorf("网格应有 6 行，实际=%d", len(tt.Grid))
	}
	for _, row := range tt.Grid {
		if len(row.Cells) != 11 {
			t.Errorf("%s 行应有 11 个单元格，实际=%d", row.Day, len(row.Cells))
		}
	}
}

func TestTimetableService_BuildTimetable_PlacesEntries(t *testing.T) {
	svc, routineRepo := setupTestTimetableService()
	routineRepo.entries = []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "11:00", "T1"),
	}

	tt, err := svc.BuildTimetable(context.Background(), ViewerContext{Role: model.RoleAdmin}, &dto.TimetableRequest{})
	if err != nil {
		t.Fatalf("BuildTimetable 应成功: %v", err)
	}

	if got := cellEntries(tt, "Monday", 9); len(got) != 1 {
		t.Errorf("周一 9 点期望 1 条，实际=%d", len(got))
	}
	if got := cellEntries(tt, "Monday", 10); len(got) != 1 {
		t.Errorf("周一 10 点期望 1 条，实际=%d", len(got))
	}
	if got := cellEntries(tt, "Monday", 11); len(got) != 0 {
		t.Errorf("周一 11 点期望 0 条，实际=%d", len(got))
	}
}

func TestTimetableService_BuildTimetable_ReflectsUpdate(t *testing.T) {
	svc, routineRepo := setupTestTimetableService()
	routineRepo.entries = []model.RoutineEntry{
		testEntry("Monday", "SO-101", "ROOM-1", "09:00", "10:00", "T1"),
	}

	viewer := ViewerContext{Role: model.RoleAdmin}
	tt, _ := svc.BuildTimetable(context.Background(), viewer, &dto.TimetableRequest{})
	if got := cellEntries(tt, "Monday", 9); len(got) != 1 {
		t.Fatalf("变更前周一 9 点应有 1 条，实际=%d", len(got))
	}

	// 条目移到周三后重新取数，网格应只反映新位置
	routineRepo.entries[0].DayOfWeek = "Wednesday"

	tt, _ = svc.BuildTimetable(context.Background(), viewer, &dto.TimetableRequest{})
	if got := cellEntries(tt, "Monday", 9); len(got) != 0 {
		t.Errorf("变更后周一 9 点应为空，实际=%d", len(got))
	}
	if got := cellEntries(tt, "Wednesday", 9); len(got) != 1 {
		t.Errorf("变更后周三 9 点应有 1 条，实际=%d", len(got))
	}
}

func TestTimetableService_BuildTimetable_DegradesOnListError(t *testing.T) {
	svc, routineRepo := setupTestTimetableService()
	routineRepo.listErr = errors.New("connection refused")

	tt, err := svc.BuildTimetable(context.Background(), ViewerContext{Role: model.RoleAdmin}, &dto.TimetableRequest{})
	if err != nil {
		t.Fatalf("取数失败应降级为空网格而非报错: %v", err)
	}
	for _, row := range tt.Grid {
		for _, cell := range row.Cells {
			if len(cell.Entries) != 0 {
				t.Fatalf("降级网格应全部为空单元格")
			}
		}
	}
}

func TestTimetableService_TimeMarks(t *testing.T) {
	svc, _ := setupTestTimetableService()

	marks := svc.TimeMarks()
	if len(marks.Marks) != 21 {
		t.Errorf("期望 21 个刻度，实际=%d", len(marks.Marks))
	}
	if marks.Marks[0] != "08:00" || marks.Marks[len(marks.Marks)-1] != "18:00" {
		t.Errorf("刻度端点应为 08:00 / 18:00，实际首=%s 尾=%s",
			marks.Marks[0], marks.Marks[len(marks.Marks)-1])
	}
}
