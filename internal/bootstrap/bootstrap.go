package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	notifyoutadapter "ttrack/internal/modules/notify/adapter/out"
	notifyservice "ttrack/internal/modules/notify/service"
	notifyusecase "ttrack/internal/modules/notify/usecase"
	reminderinadapter "ttrack/internal/modules/reminder/adapter/in"
	reminderoutadapter "ttrack/internal/modules/reminder/adapter/out"
	reminderservice "ttrack/internal/modules/reminder/service"
	reminderusecase "ttrack/internal/modules/reminder/usecase"
	trackerinadapter "ttrack/internal/modules/tracker/adapter/in"
	trackeroutadapter "ttrack/internal/modules/tracker/adapter/out"
	trackerservice "ttrack/internal/modules/tracker/service"
	trackerusecase "ttrack/internal/modules/tracker/usecase"
	"ttrack/internal/platform/clock"
	"ttrack/internal/platform/config"
	"ttrack/internal/platform/lock"
	uiapp "ttrack/internal/ui/app"
)

type App struct {
	TrackerCLI trackerinadapter.CLIHandler
	DaemonCLI  reminderinadapter.CLIHandler
	Config     config.Config
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base dir: %w", err)
	}
	clk := clock.SystemClock{}
	lk := lock.New(cfg.LockPath)

	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifyService(
		notifyoutadapter.NewStdoutBackend(os.Stdout),
		notifyoutadapter.NewDesktopBackend(),
	))

	stateStore := trackeroutadapter.NewFileStateStore(cfg.StatePath)
	logStore := trackeroutadapter.NewCSVLogStore(cfg.LogPath)
	projector, err := trackeroutadapter.NewSQLiteLogProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new log projector: %w", err)
	}

	handleStore := reminderoutadapter.NewFileHandleStore(cfg.PIDPath, cfg.DaemonLog)
	reminderUC := reminderusecase.NewInteractor(reminderservice.NewReminderService(
		reminderservice.Options{
			BaseDir:          cfg.BaseDir,
			ReminderInterval: cfg.ReminderInterval,
			PollTick:         cfg.PollTick,
		},
		clk,
		handleStore,
		reminderoutadapter.NewTrackerSessionSource(stateStore, lk),
		notifyUC,
		hclog.New(&hclog.LoggerOptions{Name: "ttrack.reminder", Level: hclog.Info, Output: os.Stderr}),
	))

	trackerUC := trackerusecase.NewInteractor(
		trackerservice.NewTrackerService(clk),
		stateStore,
		logStore,
		projector,
		lk,
		reminderUC,
		notifyUC,
		cfg.User,
	)

	return &App{
		TrackerCLI: trackerinadapter.NewCLIHandler(trackerUC),
		DaemonCLI:  reminderinadapter.NewCLIHandler(reminderUC),
		Config:     cfg,
	}, nil
}

func RunDashboard(app *App) error {
	model := uiapp.NewModel(app.Config.BaseDir, app.TrackerCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
