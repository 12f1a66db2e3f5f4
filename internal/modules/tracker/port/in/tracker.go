package in

import (
	"context"
	"time"

	"tempo/internal/modules/tracker/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Pause(ctx context.Context, input dto.PauseInput) (dto.ActiveSessionOutput, error)
	Resume(ctx context.Context, input dto.ResumeInput) (dto.ActiveSessionOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Cancel(ctx context.Context, input dto.CancelInput) (dto.CancelOutput, error)
	LogManual(ctx context.Context, input dto.ManualLogInput) (dto.StopOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
	ListSessions(ctx context.Context, from, to time.Time) ([]dto.SessionOutput, error)
}
