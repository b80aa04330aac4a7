//GET    /api/health      # Проверка сервиса и хранилища
//GET    /api/todos       # Список задач
//POST   /api/todos       # Создать задачу
//GET    /api/todos/{id}  # Получить задачу
//PUT    /api/todos/{id}  # Обновить задачу
//DELETE /api/todos/{id}  # Удалить задачу

package api

import (
	healthAPI "todosync/internal/app/server/api/http/health"
	"todosync/internal/app/server/api/http/middleware"
	"todosync/internal/app/server/api/http/middleware/logger"
	todoAPI "todosync/internal/app/server/api/http/todo"
	"todosync/internal/domain/todo"
	"todosync/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Todo   *todoAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(store storage.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("TodoSync API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(store, log)
	h.Health.SetupRoutes(API)
	h.Todo.SetupRoutes(API)

	return mux
}

func handlers(store storage.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	todoService := todo.NewService(store, log)
	middlewares.Add(loggerMW.Middleware())
	todoHandler := todoAPI.NewHandler(todoService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Todo:   todoHandler,
	}
}
