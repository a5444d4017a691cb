package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/core/ports"
	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
	"github.com/GoArmGo/RecipeApp/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и записывает события вовлечённости в бд
func runWorker(
	ctx context.Context,
	engagementUseCase usecase.EngagementUseCase,
	engagementConsumer ports.EngagementConsumer,
) error {
	log.Println("Воркер запущен. Ожидание сообщений в очереди RabbitMQ...")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Определяем функцию-обработчик для сообщений RabbitMQ
	messageHandler := func(ctx context.Context, payload payloads.EngagementPayload) error {
		log.Printf("Worker: Обработка события '%s' для рецепта %d", payload.Kind, payload.RecipeID)

		err := engagementUseCase.IngestEngagementEvent(ctx, payload)
		if err != nil {
			// Невалидное или осиротевшее событие повторной обработкой
			// не починить — подтверждаем и отбрасываем
			if apperror.IsValidationError(err) || apperror.IsNotFound(err) {
				log.Printf("Worker: Событие отброшено: %v", err)
				return nil
			}
			log.Printf("Worker: Ошибка при обработке события %+v: %v", payload, err)
			return err
		}

		log.Printf("Worker: Событие '%s' для рецепта %d успешно обработано", payload.Kind, payload.RecipeID)
		return nil
	}

	// Запускаем потребление сообщений
	err := engagementConsumer.StartConsumingEngagementEvents(workerCtx, messageHandler)
	if err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Graceful Shutdown для воркера
	<-ctx.Done()

	log.Println("Worker: Получен сигнал завершения. Завершаем работу воркера...")

	cancelWorker()

	time.Sleep(2 * time.Second) // Небольшая задержка, чтобы логи успели выйти
	log.Println("Worker: Воркер успешно завершил работу.")

	return nil
}
