package ports

import (
	"context"

	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
)

// EngagementPublisher определяет методы для публикации событий вовлечённости
// (комментарии, лайки). Этот интерфейс используется HTTP-обработчиками.
type EngagementPublisher interface {
	PublishEngagementEvent(ctx context.Context, payload payloads.EngagementPayload) error
}

// EngagementConsumer определяет методы для потребления событий вовлечённости,
// используется воркером для получения задач из очереди
type EngagementConsumer interface {
	// StartConsumingEngagementEvents начинает прослушивание очереди,
	// принимает функцию-обработчик для каждого полученного сообщения
	StartConsumingEngagementEvents(ctx context.Context, handler func(context.Context, payloads.EngagementPayload) error) error
}
