package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/domain"
)

func parseRecipeUpdate(t *testing.T, raw string) domain.RecipeUpdate {
	t.Helper()
	var upd domain.RecipeUpdate
	if err := json.Unmarshal([]byte(raw), &upd); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return upd
}

func TestRecipeUpdateSet(t *testing.T) {
	now := time.Now()

	t.Run("empty update still touches updated_at", func(t *testing.T) {
		set, args := recipeUpdateSet(domain.RecipeUpdate{}, now)
		if len(set) != 1 || set[0] != "updated_at = :updated_at" {
			t.Fatalf("set = %v", set)
		}
		if args["updated_at"] != now {
			t.Fatalf("updated_at arg missing")
		}
	})

	t.Run("only present fields in set", func(t *testing.T) {
		upd := parseRecipeUpdate(t, `{"title": "Борщ"}`)
		set, args := recipeUpdateSet(upd, now)

		joined := strings.Join(set, ", ")
		if !strings.Contains(joined, "title = :title") {
			t.Fatalf("set = %v, want title assignment", set)
		}
		if strings.Contains(joined, "ingredients") || strings.Contains(joined, "instructions") || strings.Contains(joined, "photo_url") {
			t.Fatalf("set = %v, absent fields must not appear", set)
		}
		if args["title"] != "Борщ" {
			t.Fatalf("title arg = %v", args["title"])
		}
	})

	t.Run("null photo clears column", func(t *testing.T) {
		upd := parseRecipeUpdate(t, `{"photoUrl": null}`)
		set, args := recipeUpdateSet(upd, now)

		if !strings.Contains(strings.Join(set, ", "), "photo_url = :photo_url") {
			t.Fatalf("set = %v, want photo_url assignment", set)
		}
		if ptr, ok := args["photo_url"].(*string); !ok || ptr != nil {
			t.Fatalf("photo_url arg = %v, want typed nil pointer", args["photo_url"])
		}
	})

	t.Run("photo value kept", func(t *testing.T) {
		upd := parseRecipeUpdate(t, `{"photoUrl": "https://example.com/a.jpg"}`)
		_, args := recipeUpdateSet(upd, now)

		ptr, ok := args["photo_url"].(*string)
		if !ok || ptr == nil || *ptr != "https://example.com/a.jpg" {
			t.Fatalf("photo_url arg = %v", args["photo_url"])
		}
	})
}

func TestProfileUpdateSet(t *testing.T) {
	now := time.Now()

	var upd domain.ProfileUpdate
	if err := json.Unmarshal([]byte(`{"bio": "привет", "profilePicture": null}`), &upd); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	set, args := profileUpdateSet(upd, now)
	joined := strings.Join(set, ", ")

	if !strings.Contains(joined, "bio = :bio") || !strings.Contains(joined, "profile_picture = :profile_picture") {
		t.Fatalf("set = %v", set)
	}
	if ptr, ok := args["bio"].(*string); !ok || ptr == nil || *ptr != "привет" {
		t.Fatalf("bio arg = %v", args["bio"])
	}
	if ptr, ok := args["profile_picture"].(*string); !ok || ptr != nil {
		t.Fatalf("profile_picture arg = %v, want typed nil pointer", args["profile_picture"])
	}
}
