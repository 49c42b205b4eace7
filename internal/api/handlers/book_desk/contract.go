package book_desk

import (
	"context"

	bookDesk "github.com/m04kA/SMC-DeskBooker/internal/usecase/book_desk"
)

type BookDeskUseCase interface {
	Execute(ctx context.Context, req *bookDesk.Request) (*bookDesk.Response, error)
}

// ResultRecorder учитывает результаты бронирования в метриках
type ResultRecorder interface {
	RecordBookingResult(code string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopRecorder используется, когда метрики выключены
type NopRecorder struct{}

func (NopRecorder) RecordBookingResult(string) {}
