package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/core/ports"
	"github.com/GoArmGo/RecipeApp/internal/domain"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// recipeUseCase реализует интерфейс RecipeUseCase
type recipeUseCase struct {
	recipeStorage ports.RecipeStorage
	feedStorage   ports.FeedStorage
	userStorage   ports.UserStorage
}

// NewRecipeUseCase создает новый экземпляр recipeUseCase
func NewRecipeUseCase(
	recipeStorage ports.RecipeStorage,
	feedStorage ports.FeedStorage,
	userStorage ports.UserStorage,
) RecipeUseCase {
	return &recipeUseCase{
		recipeStorage: recipeStorage,
		feedStorage:   feedStorage,
		userStorage:   userStorage,
	}
}

// CreateRecipe валидирует вход, проверяет автора и сохраняет рецепт
func (uc *recipeUseCase) CreateRecipe(ctx context.Context, in CreateRecipeInput) (int64, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Ingredients) == "" ||
		strings.TrimSpace(in.Instructions) == "" ||
		in.UserID <= 0 {
		return 0, apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}

	exists, err := uc.userStorage.UserExists(ctx, in.UserID)
	if err != nil {
		return 0, apperror.NewDatabaseError("Internal server error", err)
	}
	if !exists {
		log.Printf("usecase: Попытка создать рецепт от несуществующего пользователя %d.", in.UserID)
		return 0, apperror.NewNotFoundError("User not found", nil)
	}

	recipe := &domain.Recipe{
		Title:        in.Title,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		PhotoURL:     in.PhotoURL,
		UserID:       in.UserID,
	}

	if err := uc.recipeStorage.CreateRecipe(ctx, recipe); err != nil {
		return 0, apperror.NewDatabaseError("Internal server error", err)
	}

	log.Printf("usecase: Рецепт %d создан пользователем %d.", recipe.ID, in.UserID)
	return recipe.ID, nil
}

// UpdateRecipe применяет частичное обновление рецепта.
// Отсутствующие поля не трогаются; null допустим только для photo_url.
func (uc *recipeUseCase) UpdateRecipe(ctx context.Context, id int64, upd domain.RecipeUpdate) (*domain.Recipe, error) {
	if id <= 0 {
		return nil, apperror.NewValidationError("Invalid recipe ID", nil)
	}

	// обновление без единого поля бессмысленно, отклоняем до похода в бд
	if upd.Empty() {
		return nil, apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}

	// title, ingredients и instructions обязательны у рецепта,
	// явный null в обновлении для них запрещён
	if (upd.Title.Set && !upd.Title.Valid) ||
		(upd.Ingredients.Set && !upd.Ingredients.Valid) ||
		(upd.Instructions.Set && !upd.Instructions.Valid) {
		return nil, apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}
	if (upd.Title.Set && strings.TrimSpace(upd.Title.Value) == "") ||
		(upd.Ingredients.Set && strings.TrimSpace(upd.Ingredients.Value) == "") ||
		(upd.Instructions.Set && strings.TrimSpace(upd.Instructions.Value) == "") {
		return nil, apperror.NewValidationError("Missing required fields or incorrect format", nil)
	}

	recipe, err := uc.recipeStorage.UpdateRecipe(ctx, id, upd)
	if err != nil {
		return nil, apperror.NewDatabaseError("Internal server error", err)
	}
	if recipe == nil {
		log.Printf("usecase: Рецепт %d для обновления не найден.", id)
		return nil, apperror.NewNotFoundError("Recipe not found", nil)
	}

	log.Printf("usecase: Рецепт %d обновлён.", id)
	return recipe, nil
}

// GetFeed возвращает страницу ленты. Курсор 0 означает начало,
// limit нормализуется к [1, maxFeedLimit].
func (uc *recipeUseCase) GetFeed(ctx context.Context, cursor int64, limit int) (*domain.FeedPage, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	recipes, err := uc.feedStorage.ListFeedRecipes(ctx, cursor, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("Internal server error", err)
	}

	page := &domain.FeedPage{
		Recipes: make([]domain.FeedRecipe, 0, len(recipes)),
	}
	for _, r := range recipes {
		page.Recipes = append(page.Recipes, buildFeedRecipe(r))
	}

	// Полная страница — вероятно, есть продолжение.
	// Курсор следующей страницы — ID последнего рецепта этой.
	if len(recipes) == limit && limit > 0 {
		last := recipes[len(recipes)-1].ID
		page.NextCursor = &last
	}

	return page, nil
}

// buildFeedRecipe собирает денормализованное представление рецепта для ленты
func buildFeedRecipe(r domain.Recipe) domain.FeedRecipe {
	author := domain.FeedAuthor{}
	if r.User != nil {
		author.ID = r.User.ID
		author.Username = r.User.Username
		if r.User.Profile != nil {
			author.Profile = &domain.FeedProfile{ProfilePicture: r.User.Profile.ProfilePicture}
		}
	}

	comments := make([]domain.FeedComment, 0, len(r.Comments))
	for _, c := range r.Comments {
		fc := domain.FeedComment{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if c.User != nil {
			fc.User = domain.UserRef{ID: c.User.ID, Username: c.User.Username}
		}
		comments = append(comments, fc)
	}

	likes := make([]domain.FeedLike, 0, len(r.Likes))
	for _, l := range r.Likes {
		fl := domain.FeedLike{ID: l.ID}
		if l.User != nil {
			fl.User = domain.UserRef{ID: l.User.ID, Username: l.User.Username}
		}
		likes = append(likes, fl)
	}

	return domain.FeedRecipe{
		ID:           r.ID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		PhotoURL:     r.PhotoURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		User:         author,
		Comments:     comments,
		Likes:        likes,
	}
}

// SearchRecipes ищет рецепты по подстроке без учета регистра
func (uc *recipeUseCase) SearchRecipes(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.NewValidationError("Query parameter is required", nil)
	}

	recipes, err := uc.recipeStorage.SearchRecipesInDB(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("Internal server error", err)
	}

	summaries := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, domain.RecipeSummary{
			ID:           r.ID,
			Title:        r.Title,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			PhotoURL:     r.PhotoURL,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		})
	}

	log.Printf("usecase: Поиск по запросу %q вернул %d рецептов.", query, len(summaries))
	return summaries, nil
}
