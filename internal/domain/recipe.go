package domain

import (
	"time"
)

// Recipe представляет модель рецепта в системе,
// соответствует таблице recipes в бд.
// Владелец (user_id) обязателен и не меняется после создания.
type Recipe struct {
	ID           int64     `json:"id" db:"id" gorm:"primaryKey"`
	Title        string    `json:"title" db:"title"`
	Ingredients  string    `json:"ingredients" db:"ingredients"`
	Instructions string    `json:"instructions" db:"instructions"`
	PhotoURL     *string   `json:"photoUrl" db:"photo_url"`
	UserID       int64     `json:"userId" db:"user_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Ассоциации загружаются только лентой (GORM Preload),
	// в JSON рецепта напрямую не попадают.
	User     *User     `json:"-" db:"-" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"-" db:"-" gorm:"foreignKey:RecipeID"`
	Likes    []Like    `json:"-" db:"-" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// Comment представляет комментарий к рецепту,
// соответствует таблице comments в бд.
type Comment struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	Content   string    `json:"content" db:"content"`
	RecipeID  int64     `json:"recipeId" db:"recipe_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"-" db:"-" gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string {
	return "comments"
}

// Like представляет лайк рецепта,
// соответствует таблице likes в бд.
// Пара (user_id, recipe_id) уникальна: один лайк на рецепт от пользователя.
type Like struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	RecipeID  int64     `json:"recipeId" db:"recipe_id" gorm:"uniqueIndex:idx_likes_user_recipe"`
	UserID    int64     `json:"userId" db:"user_id" gorm:"uniqueIndex:idx_likes_user_recipe"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"-" db:"-" gorm:"foreignKey:UserID"`
}

func (Like) TableName() string {
	return "likes"
}
