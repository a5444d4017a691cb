package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

type RecipePostgresStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewRecipePostgresStorage(db *sqlx.DB, logger *slog.Logger) *RecipePostgresStorage {
	return &RecipePostgresStorage{db: db, logger: logger}
}

// CreateRecipe сохраняет новый рецепт в базе данных
func (s *RecipePostgresStorage) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	start := time.Now()

	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	query := `
	INSERT INTO recipes (title, ingredients, instructions, photo_url, user_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`

	err := s.db.QueryRowxContext(ctx, query,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.PhotoURL,
		recipe.UserID,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	).Scan(&recipe.ID)
	if err != nil {
		s.logger.Error("failed to create recipe", "user_id", recipe.UserID, "error", err)
		return fmt.Errorf("ошибка при сохранении рецепта: %w", err)
	}

	s.logger.Info("recipe created successfully",
		"id", recipe.ID,
		"user_id", recipe.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetRecipeByIDFromDB получает рецепт по ID
func (s *RecipePostgresStorage) GetRecipeByIDFromDB(ctx context.Context, id int64) (*domain.Recipe, error) {
	start := time.Now()

	var recipe domain.Recipe
	query := `SELECT * FROM recipes WHERE id = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &recipe, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("recipe not found by id", "id", id)
			return nil, nil
		}
		s.logger.Error("failed to get recipe by id", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении рецепта по ID: %w", err)
	}

	s.logger.Info("recipe retrieved by id",
		"id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &recipe, nil
}

// recipeUpdateSet собирает SET-часть частичного обновления:
// затрагиваются только заданные поля, updated_at обновляется всегда.
func recipeUpdateSet(upd domain.RecipeUpdate, now time.Time) ([]string, map[string]interface{}) {
	set := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{"updated_at": now}

	if upd.Title.Set {
		set = append(set, "title = :title")
		args["title"] = upd.Title.Value
	}
	if upd.Ingredients.Set {
		set = append(set, "ingredients = :ingredients")
		args["ingredients"] = upd.Ingredients.Value
	}
	if upd.Instructions.Set {
		set = append(set, "instructions = :instructions")
		args["instructions"] = upd.Instructions.Value
	}
	if upd.PhotoURL.Set {
		// null в запросе очищает photo_url
		set = append(set, "photo_url = :photo_url")
		args["photo_url"] = upd.PhotoURL.Ptr()
	}

	return set, args
}

// UpdateRecipe применяет частичное обновление рецепта.
// Возвращает nil без ошибки, если рецепта с таким ID нет.
func (s *RecipePostgresStorage) UpdateRecipe(ctx context.Context, id int64, upd domain.RecipeUpdate) (*domain.Recipe, error) {
	start := time.Now()

	set, args := recipeUpdateSet(upd, time.Now())
	args["id"] = id

	query := fmt.Sprintf("UPDATE recipes SET %s WHERE id = :id", strings.Join(set, ", "))

	res, err := s.db.NamedExecContext(ctx, query, args)
	if err != nil {
		s.logger.Error("failed to update recipe", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при обновлении рецепта: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке результата обновления: %w", err)
	}
	if rows == 0 {
		s.logger.Warn("recipe not found for update", "id", id)
		return nil, nil
	}

	s.logger.Info("recipe updated successfully",
		"id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return s.GetRecipeByIDFromDB(ctx, id)
}

// escapeLikePattern экранирует метасимволы LIKE, чтобы пользовательский
// запрос сопоставлялся как литеральная подстрока, а не как шаблон.
func escapeLikePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(query)
}

// SearchRecipesInDB ищет рецепты по подстроке без учета регистра.
// Порядок результатов не гарантируется, ранжирования нет.
func (s *RecipePostgresStorage) SearchRecipesInDB(ctx context.Context, query string) ([]domain.Recipe, error) {
	start := time.Now()

	q := `
	SELECT * FROM recipes
	WHERE LOWER(title) LIKE LOWER($1)
	   OR LOWER(ingredients) LIKE LOWER($1)
	   OR LOWER(instructions) LIKE LOWER($1)
	`

	searchTerm := "%" + escapeLikePattern(query) + "%"
	var recipes []domain.Recipe

	if err := s.db.SelectContext(ctx, &recipes, q, searchTerm); err != nil {
		s.logger.Error("failed to search recipes", "query", query, "error", err)
		return nil, fmt.Errorf("ошибка при поиске рецептов: %w", err)
	}

	s.logger.Info("recipes search completed",
		"query", query,
		"found", len(recipes),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return recipes, nil
}
