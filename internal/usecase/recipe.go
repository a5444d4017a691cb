package usecase

import (
	"context"

	"github.com/GoArmGo/RecipeApp/internal/domain"
	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
)

// CreateRecipeInput — проверяемые на границе сервиса данные создания рецепта.
// Идентификатор автора передаётся явно, никакого неявного состояния сессии.
type CreateRecipeInput struct {
	Title        string
	Ingredients  string
	Instructions string
	PhotoURL     *string
	UserID       int64
}

// RecipeUseCase определяет интерфейс бизнес-логики работы с рецептами
type RecipeUseCase interface {
	// CreateRecipe валидирует вход, проверяет существование автора
	// и сохраняет новый рецепт. Возвращает сгенерированный ID.
	CreateRecipe(ctx context.Context, in CreateRecipeInput) (int64, error)

	// UpdateRecipe применяет частичное обновление:
	// незаданные поля не меняются, updated_at обновляется всегда
	UpdateRecipe(ctx context.Context, id int64, upd domain.RecipeUpdate) (*domain.Recipe, error)

	// GetFeed возвращает страницу ленты со всеми аннотациями
	// (автор, комментарии, лайки), от новых рецептов к старым
	GetFeed(ctx context.Context, cursor int64, limit int) (*domain.FeedPage, error)

	// SearchRecipes ищет рецепты по подстроке без учета регистра,
	// возвращает облегчённую проекцию без вложенных сущностей
	SearchRecipes(ctx context.Context, query string) ([]domain.RecipeSummary, error)
}

// ProfileUseCase определяет интерфейс бизнес-логики профилей пользователей
type ProfileUseCase interface {
	// UpdateProfile применяет частичное обновление профиля.
	// Профиль создаётся при регистрации внешним сервисом,
	// отсутствие профиля здесь — ошибка "не найдено".
	UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.UserProfile, error)
}

// EngagementUseCase определяет интерфейс бизнес-логики событий вовлечённости.
// Публикация (QueueEngagementEvent) используется HTTP-сервером,
// запись (IngestEngagementEvent) — воркером очереди.
type EngagementUseCase interface {
	// QueueEngagementEvent валидирует событие и публикует его в очередь
	QueueEngagementEvent(ctx context.Context, payload payloads.EngagementPayload) error

	// IngestEngagementEvent валидирует событие и записывает его в бд
	IngestEngagementEvent(ctx context.Context, payload payloads.EngagementPayload) error
}
