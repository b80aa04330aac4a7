package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"todosync/internal/app/client/config"
)

// App собирает зависимости клиента: один HTTP клиент на процесс,
// репозиторий поверх него и фабрику view-model для экранов.
type App struct {
	config *config.Config
	log    *slog.Logger
	api    TodoAPI
	repo   TodoRepository
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return NewWithAPI(cfg, log, httpCl), nil
}

// NewWithAPI позволяет подставить свою реализацию TodoAPI.
func NewWithAPI(cfg *config.Config, log *slog.Logger, api TodoAPI) *App {
	log.Debug("Клиент инициализирован",
		"server", cfg.BaseURL(),
		"env", cfg.Env,
	)

	return &App{
		config: cfg,
		log:    log,
		api:    api,
		repo:   NewTodoRepository(api, log),
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Logger() *slog.Logger {
	return a.log
}

func (a *App) Repository() TodoRepository {
	return a.repo
}

// NewTodoViewModel создает view-model на время жизни одного экрана.
func (a *App) NewTodoViewModel(ctx context.Context) *TodoViewModel {
	return NewTodoViewModel(ctx, a.repo, a.log)
}

type appKey struct{}

// WithApp кладет приложение в контекст команды.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// FromContext достает приложение, положенное WithApp.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
