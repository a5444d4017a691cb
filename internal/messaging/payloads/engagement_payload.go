package payloads

// Виды событий вовлечённости, передаваемых через RabbitMQ.
const (
	EngagementKindComment = "comment"
	EngagementKindLike    = "like"
)

// EngagementPayload представляет данные события вовлечённости
// (комментарий или лайк), проходящего через очередь RabbitMQ.
// Content заполняется только для комментариев.
type EngagementPayload struct {
	Kind     string `json:"kind"`
	RecipeID int64  `json:"recipe_id"`
	UserID   int64  `json:"user_id"`
	Content  string `json:"content,omitempty"`
}
