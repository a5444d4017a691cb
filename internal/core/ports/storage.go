package ports

import (
	"context"

	"github.com/GoArmGo/RecipeApp/internal/domain"
)

// RecipeStorage определяет методы для взаимодействия с хранилищем рецептов
type RecipeStorage interface {
	// CreateRecipe вставляет новый рецепт и заполняет сгенерированный ID
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error

	// GetRecipeByIDFromDB возвращает рецепт по ID, nil если не найден
	GetRecipeByIDFromDB(ctx context.Context, id int64) (*domain.Recipe, error)

	// UpdateRecipe применяет частичное обновление, возвращает обновлённый
	// рецепт или nil, если рецепта с таким ID нет
	UpdateRecipe(ctx context.Context, id int64, upd domain.RecipeUpdate) (*domain.Recipe, error)

	// SearchRecipesInDB ищет рецепты по подстроке без учета регистра
	// в title, ingredients и instructions
	SearchRecipesInDB(ctx context.Context, query string) ([]domain.Recipe, error)
}

// FeedStorage определяет методы для чтения денормализованной ленты
type FeedStorage interface {
	// ListFeedRecipes возвращает рецепты с автором, комментариями и лайками,
	// отсортированные от новых к старым; cursor = 0 означает начало ленты
	ListFeedRecipes(ctx context.Context, cursor int64, limit int) ([]domain.Recipe, error)
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// UserExists проверяет наличие пользователя с данным ID
	UserExists(ctx context.Context, id int64) (bool, error)
}

// ProfileStorage определяет методы для взаимодействия с профилями пользователей
type ProfileStorage interface {
	// UpdateProfile применяет частичное обновление профиля, возвращает
	// обновлённый профиль или nil, если профиля у пользователя нет
	UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.UserProfile, error)
}

// EngagementStorage определяет методы для записи комментариев и лайков
type EngagementStorage interface {
	// CreateComment вставляет комментарий и заполняет сгенерированный ID
	CreateComment(ctx context.Context, comment *domain.Comment) error

	// CreateLike вставляет лайк; created = false, если пользователь
	// уже лайкнул этот рецепт (уникальность пары user/recipe)
	CreateLike(ctx context.Context, like *domain.Like) (created bool, err error)
}
