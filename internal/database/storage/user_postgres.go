package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// UserStorage реализует интерфейс ports.UserStorage.
// Пользователи создаются внешним сервисом аутентификации,
// здесь их только читаем.
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// UserExists проверяет наличие пользователя с данным ID в бд
func (s *UserStorage) UserExists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		s.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, fmt.Errorf("ошибка при проверке пользователя: %w", err)
	}

	s.logger.Info("user existence checked",
		"user_id", id,
		"exists", exists,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return exists, nil
}
