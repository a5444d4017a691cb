package storage

import (
	"strings"
	"testing"
)

// Лента сортируется по created_at DESC, id DESC; keyset-фильтр обязан
// сравнивать тот же кортеж. Сравнение по одному id теряет строки, когда
// порядок id расходится с порядком created_at (created_at выставляется
// приложением до того, как БД выдаст id). Полная проверка требует живой
// базы, здесь закрепляем форму условия.
func TestFeedKeysetComparesFullOrderingTuple(t *testing.T) {
	if !strings.HasPrefix(feedKeysetCondition, "(created_at, id) <") {
		t.Fatalf("keyset condition must compare the (created_at, id) tuple, got: %s", feedKeysetCondition)
	}
	if !strings.Contains(feedKeysetCondition, "SELECT created_at, id FROM recipes WHERE id = ?") {
		t.Fatalf("keyset condition must resolve the cursor row's tuple, got: %s", feedKeysetCondition)
	}
}
