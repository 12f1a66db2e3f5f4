package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"tempo/internal/modules/export/dto"
	exportin "tempo/internal/modules/export/port/in"
	exportout "tempo/internal/modules/export/port/out"
	"tempo/internal/modules/export/service"
)

type Interactor struct {
	svc     *service.ExportService
	history exportout.SessionHistory
}

func NewInteractor(svc *service.ExportService, history exportout.SessionHistory) exportin.Usecase {
	return &Interactor{svc: svc, history: history}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return i.svc.Execute(ctx, input)
}

// RunReport gathers the requested window of session history and hands it
// to the plugin as the command input payload.
func (i *Interactor) RunReport(ctx context.Context, input dto.ReportInput) (dto.ExecuteOutput, error) {
	if !input.To.After(input.From) {
		return dto.ExecuteOutput{}, fmt.Errorf("report window must not be empty")
	}
	records, err := i.history.Sessions(ctx, input.From, input.To)
	if err != nil {
		return dto.ExecuteOutput{}, err
	}
	payload := struct {
		From     string                    `json:"from"`
		To       string                    `json:"to"`
		Sessions []exportout.SessionRecord `json:"sessions"`
	}{
		From:     input.From.Format("2006-01-02T15:04:05Z07:00"),
		To:       input.To.Format("2006-01-02T15:04:05Z07:00"),
		Sessions: records,
	}
	inputJSON, err := json.Marshal(payload)
	if err != nil {
		return dto.ExecuteOutput{}, fmt.Errorf("encode report input: %w", err)
	}
	return i.svc.Report(ctx, dto.ExecuteInput{
		PluginName: input.PluginName,
		CommandID:  input.CommandID,
		InputJSON:  string(inputJSON),
		DataPath:   input.DataPath,
		Cwd:        input.Cwd,
		Env:        input.Env,
	})
}
