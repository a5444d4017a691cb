package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/RecipeApp/internal/config"
	"github.com/GoArmGo/RecipeApp/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер сервиса рецептов
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	recipeHandler *handler.RecipeHandler,
) error {
	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Post("/recipes", recipeHandler.CreateRecipe)
	r.Put("/recipes/{recipeID}", recipeHandler.UpdateRecipe)
	r.Get("/recipes/feed", recipeHandler.GetFeed)
	r.Get("/recipes/search", recipeHandler.SearchRecipes)
	r.Post("/recipes/{recipeID}/comments", recipeHandler.PostComment)
	r.Post("/recipes/{recipeID}/likes", recipeHandler.PostLike)
	r.Post("/users/{userID}/profile", recipeHandler.UpdateProfile)
	r.Get("/healthz", recipeHandler.Health)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Сервер запущен на %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	select {
	case err := <-serverErr:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	log.Println("Получен сигнал завершения. Завершаем работу сервера...")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Println("Сервер успешно завершил работу.")
	return nil
}
