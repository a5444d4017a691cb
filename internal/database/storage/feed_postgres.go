package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/domain"
	"gorm.io/gorm"
)

// FeedPostgresStorage реализует интерфейс ports.FeedStorage с использованием GORM.
// Лента — единственный запрос с глубокой вложенностью (автор + профиль,
// комментарии и лайки с пользователями), здесь Preload окупается.
type FeedPostgresStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewFeedPostgresStorage(db *gorm.DB, logger *slog.Logger) *FeedPostgresStorage {
	return &FeedPostgresStorage{db: db, logger: logger}
}

// feedKeysetCondition отсекает уже отданные строки по кортежу сортировки
// (created_at, id) целиком. Фильтр по одному id некорректен: created_at
// выставляется до INSERT, при конкурентных вставках порядок id может
// разойтись с порядком created_at, и строка выпадала бы из ленты навсегда.
const feedKeysetCondition = "(created_at, id) < (SELECT created_at, id FROM recipes WHERE id = ?)"

// ListFeedRecipes возвращает страницу ленты от новых рецептов к старым.
// cursor — ID последнего рецепта предыдущей страницы, 0 означает начало.
func (s *FeedPostgresStorage) ListFeedRecipes(ctx context.Context, cursor int64, limit int) ([]domain.Recipe, error) {
	start := time.Now()

	q := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Comments.User").
		Preload("Likes.User").
		Order("created_at DESC, id DESC").
		Limit(limit)

	if cursor > 0 {
		q = q.Where(feedKeysetCondition, cursor)
	}

	var recipes []domain.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		s.logger.Error("failed to list feed recipes", "cursor", cursor, "limit", limit, "error", err)
		return nil, fmt.Errorf("ошибка при получении ленты рецептов: %w", err)
	}

	s.logger.Info("feed recipes listed successfully",
		"cursor", cursor,
		"limit", limit,
		"count", len(recipes),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return recipes, nil
}
