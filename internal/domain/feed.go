package domain

import (
	"time"
)

// Типы денормализованного представления ленты.
// Форма вложенности повторяет контракт API:
// рецепт + автор с аватаркой + комментарии + лайки.

// UserRef — короткая ссылка на пользователя внутри ленты.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// FeedProfile несёт только аватарку автора.
type FeedProfile struct {
	ProfilePicture *string `json:"profilePicture"`
}

// FeedAuthor — автор рецепта с вложенным профилем.
type FeedAuthor struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Profile  *FeedProfile `json:"profile"`
}

// FeedComment — комментарий в ленте вместе с автором.
type FeedComment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `json:"user"`
}

// FeedLike — лайк в ленте вместе с пользователем.
type FeedLike struct {
	ID   int64   `json:"id"`
	User UserRef `json:"user"`
}

// FeedRecipe — рецепт ленты со всеми аннотациями.
type FeedRecipe struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Ingredients  string        `json:"ingredients"`
	Instructions string        `json:"instructions"`
	PhotoURL     *string       `json:"photoUrl"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	User         FeedAuthor    `json:"user"`
	Comments     []FeedComment `json:"comments"`
	Likes        []FeedLike    `json:"likes"`
}

// FeedPage — страница ленты с курсором для следующего запроса.
// NextCursor равен nil, когда рецепты закончились.
type FeedPage struct {
	Recipes    []FeedRecipe `json:"recipes"`
	NextCursor *int64       `json:"nextCursor"`
}

// RecipeSummary — облегчённая проекция рецепта для поиска:
// без автора, комментариев и лайков.
type RecipeSummary struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	PhotoURL     *string   `json:"photoUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
