package usecase

import (
	"context"
	"log"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/core/ports"
	"github.com/GoArmGo/RecipeApp/internal/domain"
)

// profileUseCase реализует интерфейс ProfileUseCase
type profileUseCase struct {
	profileStorage ports.ProfileStorage
	userStorage    ports.UserStorage
}

// NewProfileUseCase создает новый экземпляр profileUseCase
func NewProfileUseCase(profileStorage ports.ProfileStorage, userStorage ports.UserStorage) ProfileUseCase {
	return &profileUseCase{
		profileStorage: profileStorage,
		userStorage:    userStorage,
	}
}

// UpdateProfile применяет частичное обновление профиля пользователя.
// Пользователь без профиля — это "не найдено", профиль здесь не создаётся.
func (uc *profileUseCase) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	if userID <= 0 {
		return nil, apperror.NewValidationError("Invalid user ID", nil)
	}

	exists, err := uc.userStorage.UserExists(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("Internal server error", err)
	}
	if !exists {
		log.Printf("usecase: Попытка обновить профиль несуществующего пользователя %d.", userID)
		return nil, apperror.NewNotFoundError("User not found", nil)
	}

	profile, err := uc.profileStorage.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, apperror.NewDatabaseError("Internal server error", err)
	}
	if profile == nil {
		log.Printf("usecase: У пользователя %d нет профиля для обновления.", userID)
		return nil, apperror.NewNotFoundError("Profile not found", nil)
	}

	log.Printf("usecase: Профиль пользователя %d обновлён.", userID)
	return profile, nil
}
