package domain

import (
	"time"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Пользователи создаются внешним сервисом аутентификации,
// здесь они только читаются.
type User struct {
	ID           int64     `json:"id" db:"id" gorm:"primaryKey"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Profile *UserProfile `json:"-" db:"-" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile представляет профиль пользователя,
// соответствует таблице user_profiles в бд.
// У каждого пользователя не более одного профиля (уникальный user_id).
type UserProfile struct {
	ID             int64     `json:"id" db:"id" gorm:"primaryKey"`
	UserID         int64     `json:"userId" db:"user_id"`
	Bio            *string   `json:"bio" db:"bio"`
	ProfilePicture *string   `json:"profilePicture" db:"profile_picture"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
