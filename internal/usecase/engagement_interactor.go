package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/core/ports"
	"github.com/GoArmGo/RecipeApp/internal/domain"
	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
)

// engagementUseCase реализует интерфейс EngagementUseCase
type engagementUseCase struct {
	engagementStorage ports.EngagementStorage
	recipeStorage     ports.RecipeStorage
	userStorage       ports.UserStorage
	publisher         ports.EngagementPublisher
}

// NewEngagementUseCase создает новый экземпляр engagementUseCase
func NewEngagementUseCase(
	engagementStorage ports.EngagementStorage,
	recipeStorage ports.RecipeStorage,
	userStorage ports.UserStorage,
	publisher ports.EngagementPublisher,
) EngagementUseCase {
	return &engagementUseCase{
		engagementStorage: engagementStorage,
		recipeStorage:     recipeStorage,
		userStorage:       userStorage,
		publisher:         publisher,
	}
}

// validateEvent проверяет событие вовлечённости перед публикацией и записью.
// Воркер вызывает его повторно: между публикацией и обработкой
// рецепт или пользователь могли исчезнуть.
func (uc *engagementUseCase) validateEvent(ctx context.Context, payload payloads.EngagementPayload) error {
	switch payload.Kind {
	case payloads.EngagementKindComment:
		if strings.TrimSpace(payload.Content) == "" {
			return apperror.NewValidationError("Missing required fields or incorrect format", nil)
		}
	case payloads.EngagementKindLike:
		// контента у лайка нет
	default:
		return apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}

	if payload.RecipeID <= 0 || payload.UserID <= 0 {
		return apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}

	recipe, err := uc.recipeStorage.GetRecipeByIDFromDB(ctx, payload.RecipeID)
	if err != nil {
		return apperror.NewDatabaseError("Internal server error", err)
	}
	if recipe == nil {
		return apperror.NewNotFoundError("Recipe not found", nil)
	}

	exists, err := uc.userStorage.UserExists(ctx, payload.UserID)
	if err != nil {
		return apperror.NewDatabaseError("Internal server error", err)
	}
	if !exists {
		return apperror.NewNotFoundError("User not found", nil)
	}

	return nil
}

// QueueEngagementEvent валидирует событие и публикует его в очередь
func (uc *engagementUseCase) QueueEngagementEvent(ctx context.Context, payload payloads.EngagementPayload) error {
	if err := uc.validateEvent(ctx, payload); err != nil {
		return err
	}

	if err := uc.publisher.PublishEngagementEvent(ctx, payload); err != nil {
		return apperror.NewInternalError("Internal server error", err)
	}

	log.Printf("usecase: Событие '%s' для рецепта %d поставлено в очередь.", payload.Kind, payload.RecipeID)
	return nil
}

// IngestEngagementEvent валидирует событие и записывает его в бд.
// Повторный лайк той же пары (user, recipe) не ошибка: событие считается
// обработанным, чтобы сообщение не возвращалось в очередь.
func (uc *engagementUseCase) IngestEngagementEvent(ctx context.Context, payload payloads.EngagementPayload) error {
	if err := uc.validateEvent(ctx, payload); err != nil {
		return err
	}

	switch payload.Kind {
	case payloads.EngagementKindComment:
		comment := &domain.Comment{
			Content:  payload.Content,
			RecipeID: payload.RecipeID,
			UserID:   payload.UserID,
		}
		if err := uc.engagementStorage.CreateComment(ctx, comment); err != nil {
			return apperror.NewDatabaseError("Internal server error", err)
		}
		log.Printf("usecase: Комментарий %d к рецепту %d сохранён.", comment.ID, payload.RecipeID)

	case payloads.EngagementKindLike:
		like := &domain.Like{
			RecipeID: payload.RecipeID,
			UserID:   payload.UserID,
		}
		created, err := uc.engagementStorage.CreateLike(ctx, like)
		if err != nil {
			return apperror.NewDatabaseError("Internal server error", err)
		}
		if !created {
			log.Printf("usecase: Лайк пользователя %d на рецепт %d уже существует, пропускаем.", payload.UserID, payload.RecipeID)
			return nil
		}
		log.Printf("usecase: Лайк пользователя %d на рецепт %d сохранён.", payload.UserID, payload.RecipeID)
	}

	return nil
}
