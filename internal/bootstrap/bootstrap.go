package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "tempo/internal/modules/catalog/adapter/in"
	catalogoutadapter "tempo/internal/modules/catalog/adapter/out"
	catalogin "tempo/internal/modules/catalog/port/in"
	catalogservice "tempo/internal/modules/catalog/service"
	catalogusecase "tempo/internal/modules/catalog/usecase"
	exportinadapter "tempo/internal/modules/export/adapter/in"
	exportoutadapter "tempo/internal/modules/export/adapter/out"
	exportin "tempo/internal/modules/export/port/in"
	exportservice "tempo/internal/modules/export/service"
	exportusecase "tempo/internal/modules/export/usecase"
	scheduleinadapter "tempo/internal/modules/schedule/adapter/in"
	scheduleoutadapter "tempo/internal/modules/schedule/adapter/out"
	schedulein "tempo/internal/modules/schedule/port/in"
	scheduleservice "tempo/internal/modules/schedule/service"
	scheduleusecase "tempo/internal/modules/schedule/usecase"
	trackerinadapter "tempo/internal/modules/tracker/adapter/in"
	trackeroutadapter "tempo/internal/modules/tracker/adapter/out"
	trackerin "tempo/internal/modules/tracker/port/in"
	trackerservice "tempo/internal/modules/tracker/service"
	trackerusecase "tempo/internal/modules/tracker/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/id"
	"tempo/internal/platform/tx"
	uiapp "tempo/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ScheduleCLI scheduleinadapter.CLIHandler
	TrackerCLI  trackerinadapter.CLIHandler
	ExportCLI   exportinadapter.CLIHandler

	catalogUC  catalogin.Usecase
	scheduleUC schedulein.Usecase
	trackerUC  trackerin.Usecase
	exportUC   exportin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	activityStore, err := catalogoutadapter.NewSQLiteActivityStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new activity store: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(
		catalogservice.NewActivityService(clk, ids, activityStore),
	)

	timeSource := scheduleoutadapter.NewCatalogTimeSource(catalogUC)
	scheduleUC := scheduleusecase.NewInteractor(
		scheduleservice.NewScheduleService(timeSource, timeSource),
	)

	sessionStore, err := trackeroutadapter.NewSQLiteSessionStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	trackerUC := trackerusecase.NewInteractor(
		trackerservice.NewTrackerService(clk, ids, sessionStore),
		trackeroutadapter.NewFileActiveSessionStore(cfg.DataPath),
		trackeroutadapter.NewCatalogActivityAdapter(catalogUC),
		trackeroutadapter.NewJournalSessionStore(cfg.JournalPath),
		tx.NoopManager{},
	)

	exportUC := exportusecase.NewInteractor(
		exportservice.NewExportService(
			exportoutadapter.NewFileManifestStore(cfg.DataPath),
			exportoutadapter.NewGRPCHost(),
		),
		exportoutadapter.NewTrackerHistoryAdapter(trackerUC),
	)

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ScheduleCLI: scheduleinadapter.NewCLIHandler(scheduleUC),
		TrackerCLI:  trackerinadapter.NewCLIHandler(trackerUC),
		ExportCLI:   exportinadapter.NewCLIHandler(exportUC),
		catalogUC:   catalogUC,
		scheduleUC:  scheduleUC,
		trackerUC:   trackerUC,
		exportUC:    exportUC,
	}, nil
}

func RunTUI(cfg config.Config, app *App, today string) error {
	model := uiapp.NewModel(cfg.DataPath, app.catalogUC, app.scheduleUC, app.trackerUC, app.exportUC, today)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
