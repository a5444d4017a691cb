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

// ProfilePostgresStorage реализует интерфейс ports.ProfileStorage
type ProfilePostgresStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewProfilePostgresStorage(db *sqlx.DB, logger *slog.Logger) *ProfilePostgresStorage {
	return &ProfilePostgresStorage{db: db, logger: logger}
}

// profileUpdateSet собирает SET-часть частичного обновления профиля.
func profileUpdateSet(upd domain.ProfileUpdate, now time.Time) ([]string, map[string]interface{}) {
	set := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{"updated_at": now}

	if upd.Bio.Set {
		set = append(set, "bio = :bio")
		args["bio"] = upd.Bio.Ptr()
	}
	if upd.ProfilePicture.Set {
		set = append(set, "profile_picture = :profile_picture")
		args["profile_picture"] = upd.ProfilePicture.Ptr()
	}

	return set, args
}

// UpdateProfile применяет частичное обновление профиля пользователя.
// Возвращает nil без ошибки, если профиля у пользователя нет.
func (s *ProfilePostgresStorage) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	start := time.Now()

	set, args := profileUpdateSet(upd, time.Now())
	args["user_id"] = userID

	query := fmt.Sprintf("UPDATE user_profiles SET %s WHERE user_id = :user_id", strings.Join(set, ", "))

	res, err := s.db.NamedExecContext(ctx, query, args)
	if err != nil {
		s.logger.Error("failed to update profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке результата обновления профиля: %w", err)
	}
	if rows == 0 {
		s.logger.Warn("profile not found for update", "user_id", userID)
		return nil, nil
	}

	var profile domain.UserProfile
	err = s.db.GetContext(ctx, &profile, `SELECT * FROM user_profiles WHERE user_id = $1 LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to reload updated profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("ошибка при чтении обновлённого профиля: %w", err)
	}

	s.logger.Info("profile updated successfully",
		"user_id", userID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &profile, nil
}
