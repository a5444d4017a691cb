package di

import (
	"log"

	"github.com/GoArmGo/RecipeApp/internal/app"
	"github.com/GoArmGo/RecipeApp/internal/config"
	"github.com/GoArmGo/RecipeApp/internal/database/client"
	"github.com/GoArmGo/RecipeApp/internal/database/storage"
	"github.com/GoArmGo/RecipeApp/internal/handler"
	"github.com/GoArmGo/RecipeApp/internal/logger"
	"github.com/GoArmGo/RecipeApp/internal/rabbitmq"
	"github.com/GoArmGo/RecipeApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + GORM поверх одного пула)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	recipeStorage := storage.NewRecipePostgresStorage(dbClient.DB, slogger)
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	profileStorage := storage.NewProfilePostgresStorage(dbClient.DB, slogger)
	feedStorage := storage.NewFeedPostgresStorage(dbClient.Gorm, slogger)
	engagementStorage := storage.NewEngagementPostgresStorage(dbClient.Gorm, slogger)

	// 4. Инициализация RabbitMQ клиента.
	// Publisher и Consumer — один и тот же клиент очереди.
	rabbitMQClient, err := rabbitmq.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация бизнес-логики (usecases)
	recipeUseCase := usecase.NewRecipeUseCase(recipeStorage, feedStorage, userStorage)
	profileUseCase := usecase.NewProfileUseCase(profileStorage, userStorage)
	engagementUseCase := usecase.NewEngagementUseCase(engagementStorage, recipeStorage, userStorage, rabbitMQClient)

	// 6. Инициализация HTTP-обработчиков
	recipeHandler := handler.NewRecipeHandler(recipeUseCase, profileUseCase, engagementUseCase, slogger)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		recipeHandler,
		engagementUseCase,
		rabbitMQClient,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
