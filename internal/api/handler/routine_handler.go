package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"class-routine/backend/internal/dto"
	"class-routine/backend/internal/service"
	"class-routine/backend/pkg/response"
)

// RoutineHandler 排课模块 HTTP 处理器
type RoutineHandler struct {
	routineSvc service.RoutineService
}

// NewRoutineHandler 创建 RoutineHandler
func NewRoutineHandler(routineSvc service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineSvc: routineSvc}
}

// CreateRoutine 创建排课条目
// POST /api/v1/routines
func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	var req dto.RoutineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.routineSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleRoutineError(c, err)
		return
	}

	response.Created(c, entry)
}

// UpdateRoutine 按原自然键更新排课条目（键字段可变）
// PUT /api/v1/routines
func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
	var req dto.UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.routineSvc.Update(c.Request.Context(), req.Original.ToKey(), &req.Entry, callerID)
	if err != nil {
		h.handleRoutineError(c, err)
		return
	}

	response.OK(c, entry)
}

// DeleteRoutine 按自然键删除排课条目
// DELETE /api/v1/routines
func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	var req dto.RoutineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.routineSvc.Delete(c.Request.Context(), req.ToKey()); err != nil {
		h.handleRoutineError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleRoutineError 统一处理排课模块业务错误
func (h *RoutineHandler) handleRoutineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoutineSubjectRequired),
		errors.Is(err, service.ErrRoutineClassroomRequired),
		errors.Is(err, service.ErrRoutineAcademicYearRequired),
		errors.Is(err, service.ErrRoutineInvalidTime),
		errors.Is(err, service.ErrRoutineKeyIncomplete):
		response.BadRequest(c, 12001, err.Error())
	case errors.Is(err, service.ErrRoutineDuplicate):
		response.Conflict(c, 12002, err.Error())
	case errors.Is(err, service.ErrRoutineNotFound):
		response.NotFound(c, 12003, err.Error())
	default:
		response.InternalError(c)
	}
}
