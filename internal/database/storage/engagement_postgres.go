package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementPostgresStorage реализует интерфейс ports.EngagementStorage
// с использованием GORM. Записывает комментарии и лайки, приходящие
// из очереди событий вовлечённости.
type EngagementPostgresStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEngagementPostgresStorage(db *gorm.DB, logger *slog.Logger) *EngagementPostgresStorage {
	return &EngagementPostgresStorage{db: db, logger: logger}
}

// CreateComment сохраняет комментарий к рецепту
func (s *EngagementPostgresStorage) CreateComment(ctx context.Context, comment *domain.Comment) error {
	start := time.Now()

	comment.CreatedAt = time.Now()

	result := s.db.WithContext(ctx).Omit(clause.Associations).Create(comment)
	if result.Error != nil {
		s.logger.Error("failed to create comment",
			"recipe_id", comment.RecipeID,
			"user_id", comment.UserID,
			"error", result.Error,
		)
		return fmt.Errorf("ошибка при сохранении комментария: %w", result.Error)
	}

	s.logger.Info("comment created successfully",
		"id", comment.ID,
		"recipe_id", comment.RecipeID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// CreateLike сохраняет лайк рецепта. Повторный лайк той же пары
// (user, recipe) молча игнорируется за счет ON CONFLICT DO NOTHING.
func (s *EngagementPostgresStorage) CreateLike(ctx context.Context, like *domain.Like) (bool, error) {
	start := time.Now()

	like.CreatedAt = time.Now()

	result := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		s.logger.Error("failed to create like",
			"recipe_id", like.RecipeID,
			"user_id", like.UserID,
			"error", result.Error,
		)
		return false, fmt.Errorf("ошибка при сохранении лайка: %w", result.Error)
	}

	created := result.RowsAffected > 0
	s.logger.Info("like processed",
		"recipe_id", like.RecipeID,
		"user_id", like.UserID,
		"created", created,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return created, nil
}
