package in

import (
	"context"
	"time"

	"tempo/internal/modules/tracker/dto"
	trackerin "tempo/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, activityID, kind string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{ActivityID: activityID, Kind: kind})
}

func (h CLIHandler) Pause(ctx context.Context, sessionID string) (dto.ActiveSessionOutput, error) {
	return h.usecase.Pause(ctx, dto.PauseInput{SessionID: sessionID})
}

func (h CLIHandler) Resume(ctx context.Context, sessionID string) (dto.ActiveSessionOutput, error) {
	return h.usecase.Resume(ctx, dto.ResumeInput{SessionID: sessionID})
}

func (h CLIHandler) Stop(ctx context.Context, sessionID, notes string) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx, dto.StopInput{SessionID: sessionID, Notes: notes})
}

func (h CLIHandler) Cancel(ctx context.Context, sessionID, reason string) (dto.CancelOutput, error) {
	return h.usecase.Cancel(ctx, dto.CancelInput{SessionID: sessionID, Reason: reason})
}

func (h CLIHandler) LogManual(ctx context.Context, activityID, kind string, start, end *time.Time, minutes int, notes string) (dto.StopOutput, error) {
	return h.usecase.LogManual(ctx, dto.ManualLogInput{
		ActivityID:      activityID,
		Kind:            kind,
		Start:           start,
		End:             end,
		DurationMinutes: minutes,
		Notes:           notes,
	})
}

func (h CLIHandler) GetActive(ctx context.Context) (dto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) ListSessions(ctx context.Context, from, to time.Time) ([]dto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx, from, to)
}
