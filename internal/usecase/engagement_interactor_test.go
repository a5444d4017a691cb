package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/domain"
	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
)

func validEngagementDeps() (*fakeEngagementStorage, *fakeRecipeStorage, *fakeUserStorage, *fakePublisher) {
	return &fakeEngagementStorage{likeCreated: true},
		&fakeRecipeStorage{recipe: &domain.Recipe{ID: 10, Title: "Борщ", UserID: 1}},
		&fakeUserStorage{exists: true},
		&fakePublisher{}
}

func TestQueueEngagementEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("comment published", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{
			Kind:     payloads.EngagementKindComment,
			RecipeID: 10,
			UserID:   2,
			Content:  "отлично получилось",
		}
		if err := uc.QueueEngagementEvent(ctx, payload); err != nil {
			t.Fatalf("QueueEngagementEvent failed: %v", err)
		}
		if len(publisher.published) != 1 {
			t.Fatalf("published %d events, want 1", len(publisher.published))
		}
		if len(engagement.comments) != 0 {
			t.Fatalf("server mode must not write to storage")
		}
	})

	t.Run("comment without content", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindComment, RecipeID: 10, UserID: 2}
		if err := uc.QueueEngagementEvent(ctx, payload); !apperror.IsValidationError(err) {
			t.Fatalf("err = %v, want validation error", err)
		}
		if len(publisher.published) != 0 {
			t.Fatalf("invalid event must not be published")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{Kind: "repost", RecipeID: 10, UserID: 2}
		if err := uc.QueueEngagementEvent(ctx, payload); !apperror.IsValidationError(err) {
			t.Fatalf("err = %v, want validation error", err)
		}
	})

	t.Run("recipe not found", func(t *testing.T) {
		engagement, _, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, &fakeRecipeStorage{recipe: nil}, users, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 404, UserID: 2}
		err := uc.QueueEngagementEvent(ctx, payload)
		appErr, ok := apperror.FromError(err)
		if !ok || appErr.Message != "Recipe not found" {
			t.Fatalf("err = %v, want recipe not found", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		engagement, recipes, _, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, &fakeUserStorage{exists: false}, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 10, UserID: 99}
		err := uc.QueueEngagementEvent(ctx, payload)
		appErr, ok := apperror.FromError(err)
		if !ok || appErr.Message != "User not found" {
			t.Fatalf("err = %v, want user not found", err)
		}
	})

	t.Run("publisher failure", func(t *testing.T) {
		engagement, recipes, users, _ := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, &fakePublisher{err: errors.New("amqp down")})

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 10, UserID: 2}
		err := uc.QueueEngagementEvent(ctx, payload)
		appErr, ok := apperror.FromError(err)
		if !ok || appErr.Type != apperror.InternalError {
			t.Fatalf("err = %v, want internal error", err)
		}
	})
}

func TestIngestEngagementEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("comment stored", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{
			Kind:     payloads.EngagementKindComment,
			RecipeID: 10,
			UserID:   2,
			Content:  "супер",
		}
		if err := uc.IngestEngagementEvent(ctx, payload); err != nil {
			t.Fatalf("IngestEngagementEvent failed: %v", err)
		}
		if len(engagement.comments) != 1 {
			t.Fatalf("stored %d comments, want 1", len(engagement.comments))
		}
		got := engagement.comments[0]
		if got.RecipeID != 10 || got.UserID != 2 || got.Content != "супер" {
			t.Fatalf("comment = %+v", got)
		}
		if len(publisher.published) != 0 {
			t.Fatalf("worker mode must not publish")
		}
	})

	t.Run("like stored", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 10, UserID: 2}
		if err := uc.IngestEngagementEvent(ctx, payload); err != nil {
			t.Fatalf("IngestEngagementEvent failed: %v", err)
		}
		if len(engagement.likes) != 1 {
			t.Fatalf("stored %d likes, want 1", len(engagement.likes))
		}
	})

	t.Run("duplicate like is not an error", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		engagement.likeCreated = false
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 10, UserID: 2}
		if err := uc.IngestEngagementEvent(ctx, payload); err != nil {
			t.Fatalf("duplicate like must be swallowed, got: %v", err)
		}
	})

	t.Run("storage failure is retryable", func(t *testing.T) {
		engagement, recipes, users, publisher := validEngagementDeps()
		engagement.likeErr = errors.New("deadlock")
		uc := NewEngagementUseCase(engagement, recipes, users, publisher)

		payload := payloads.EngagementPayload{Kind: payloads.EngagementKindLike, RecipeID: 10, UserID: 2}
		err := uc.IngestEngagementEvent(ctx, payload)
		appErr, ok := apperror.FromError(err)
		if !ok || appErr.Type != apperror.DatabaseError {
			t.Fatalf("err = %v, want database error", err)
		}
	})
}
