package domain

import (
	"encoding/json"
)

// Optional описывает трёхзначное необязательное поле частичного обновления:
// поле отсутствует в JSON — не трогаем, поле равно null — очищаем,
// поле со значением — перезаписываем.
type Optional[T any] struct {
	Set   bool // поле присутствовало в JSON
	Valid bool // поле имело не-null значение
	Value T
}

// UnmarshalJSON вызывается только для присутствующих в JSON полей,
// поэтому сам факт вызова означает Set = true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr возвращает значение поля как указатель для записи в nullable-колонку:
// nil при null, адрес значения при заданном значении.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// RecipeUpdate — частичное обновление рецепта.
// Семантика полей определяется типом Optional и нигде не дублируется.
type RecipeUpdate struct {
	Title        Optional[string] `json:"title"`
	Ingredients  Optional[string] `json:"ingredients"`
	Instructions Optional[string] `json:"instructions"`
	PhotoURL     Optional[string] `json:"photoUrl"`
}

// Empty сообщает, задано ли хотя бы одно поле обновления.
func (u RecipeUpdate) Empty() bool {
	return !u.Title.Set && !u.Ingredients.Set && !u.Instructions.Set && !u.PhotoURL.Set
}

// ProfileUpdate — частичное обновление профиля пользователя.
type ProfileUpdate struct {
	Bio            Optional[string] `json:"bio"`
	ProfilePicture Optional[string] `json:"profilePicture"`
}
