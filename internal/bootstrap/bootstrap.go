package bootstrap

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	archiveinadapter "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/adapter/in"
	archiveoutadapter "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/adapter/out"
	archiveservice "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/service"
	archiveusecase "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/usecase"
	bestoutadapter "github.com/shivam2408/Self-Mediation-App/internal/modules/best/adapter/out"
	bestservice "github.com/shivam2408/Self-Mediation-App/internal/modules/best/service"
	bestusecase "github.com/shivam2408/Self-Mediation-App/internal/modules/best/usecase"
	sessioninadapter "github.com/shivam2408/Self-Mediation-App/internal/modules/session/adapter/in"
	sessionservice "github.com/shivam2408/Self-Mediation-App/internal/modules/session/service"
	sessionusecase "github.com/shivam2408/Self-Mediation-App/internal/modules/session/usecase"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/clock"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/config"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/id"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/kv"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/logging"
	uiapp "github.com/shivam2408/Self-Mediation-App/internal/ui/app"
)

type App struct {
	SessionTUI sessioninadapter.TUIHandler
	HistoryTUI archiveinadapter.TUIHandler
}

func New(cfg config.Config) (*App, error) {
	log, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.NewMonotonicMillis(clk)

	var gateway kv.Gateway
	switch cfg.Storage {
	case config.StorageFile:
		gateway = kv.NewFileGateway(cfg.RecordsPath)
	default:
		g, err := kv.NewSQLiteGateway(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open records db: %w", err)
		}
		gateway = g
	}

	bestUC := bestusecase.NewInteractor(
		bestservice.NewBestService(bestoutadapter.NewKVBestStore(gateway), log),
	)

	archiveUC := archiveusecase.NewInteractor(
		archiveservice.NewArchiveService(archiveoutadapter.NewKVArchiveStore(gateway), log),
		time.Local,
	)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		bestUC,
		archiveUC,
		log,
	)

	return &App{
		SessionTUI: sessioninadapter.NewTUIHandler(sessionUC),
		HistoryTUI: archiveinadapter.NewTUIHandler(archiveUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionTUI, app.HistoryTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
