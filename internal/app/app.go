package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/RecipeApp/internal/config"
	"github.com/GoArmGo/RecipeApp/internal/core/ports"
	"github.com/GoArmGo/RecipeApp/internal/database/client"
	"github.com/GoArmGo/RecipeApp/internal/handler"
	"github.com/GoArmGo/RecipeApp/internal/usecase"
)

type App struct {
	Config             *config.Config
	logger             *slog.Logger
	db                 *client.Client
	recipeHandler      *handler.RecipeHandler
	engagementUseCase  usecase.EngagementUseCase
	engagementConsumer ports.EngagementConsumer
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *client.Client,
	recipeHandler *handler.RecipeHandler,
	engagementUseCase usecase.EngagementUseCase,
	engagementConsumer ports.EngagementConsumer) *App {
	return &App{
		Config:             cfg,
		logger:             logger,
		db:                 db,
		recipeHandler:      recipeHandler,
		engagementUseCase:  engagementUseCase,
		engagementConsumer: engagementConsumer,
	}
}

// LoggerIns возвращает логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[app] Запуск в режиме: %s", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.recipeHandler)

	case "worker":
		err = runWorker(ctx, a.engagementUseCase, a.engagementConsumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	log.Println("[app] Завершение работы...")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		log.Printf("[app] ошибка при завершении: %v", closeErr)
	}

	if err != nil {
		return err
	}

	log.Println("[app] Завершено корректно.")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// consumer и publisher — один клиент RabbitMQ, закрываем один раз
	if closer, ok := a.engagementConsumer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
