package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/RecipeApp/internal/apperror"
	"github.com/GoArmGo/RecipeApp/internal/domain"
	"github.com/GoArmGo/RecipeApp/internal/messaging/payloads"
	"github.com/GoArmGo/RecipeApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// RecipeHandler обрабатывает HTTP-запросы сервиса рецептов
type RecipeHandler struct {
	recipeUseCase     usecase.RecipeUseCase
	profileUseCase    usecase.ProfileUseCase
	engagementUseCase usecase.EngagementUseCase
	logger            *slog.Logger
}

// NewRecipeHandler создает новый экземпляр RecipeHandler
func NewRecipeHandler(
	recipeUseCase usecase.RecipeUseCase,
	profileUseCase usecase.ProfileUseCase,
	engagementUseCase usecase.EngagementUseCase,
	logger *slog.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		recipeUseCase:     recipeUseCase,
		profileUseCase:    profileUseCase,
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

// envelope — единый формат всех ответов API
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *RecipeHandler) respondWithJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// respondWithError переводит ошибку в HTTP-ответ. Детали серверных ошибок
// в тело не попадают, клиент получает только диагностический код.
func (h *RecipeHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal server error", err)
	}

	var data any
	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", appErr.Code(),
			"error", err,
		)
		data = map[string]string{"code": appErr.Code()}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if encErr := json.NewEncoder(w).Encode(envelope{Success: false, Message: appErr.Message, Data: data}); encErr != nil {
		h.logger.Error("failed to encode error response", "error", encErr)
	}
}

type createRecipeRequest struct {
	Title        string  `json:"title"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
	PhotoURL     *string `json:"photoUrl"`
	UserID       int64   `json:"userId"`
}

// CreateRecipe обрабатывает POST /recipes
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, r, apperror.NewValidationError("Missing required fields or incorrect format", err))
		return
	}

	id, err := h.recipeUseCase.CreateRecipe(r.Context(), usecase.CreateRecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PhotoURL:     req.PhotoURL,
		UserID:       req.UserID,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, "Recipe created successfully", map[string]string{
		"recipeId": strconv.FormatInt(id, 10),
	})
}

// UpdateRecipe обрабатывает PUT /recipes/{recipeID}
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil || id <= 0 {
		h.respondWithError(w, r, apperror.NewValidationError("Invalid recipe ID", err))
		return
	}

	var upd domain.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.respondWithError(w, r, apperror.NewValidationError("Missing required fields or incorrect format", err))
		return
	}

	recipe, err := h.recipeUseCase.UpdateRecipe(r.Context(), id, upd)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, "Recipe updated successfully", recipe)
}

// GetFeed обрабатывает GET /recipes/feed?cursor=&limit=
func (h *RecipeHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	var cursor int64
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			h.respondWithError(w, r, apperror.NewValidationError("Invalid cursor", err))
			return
		}
		cursor = parsed
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondWithError(w, r, apperror.NewValidationError("Invalid limit", err))
			return
		}
		limit = parsed
	}

	page, err := h.recipeUseCase.GetFeed(r.Context(), cursor, limit)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, "Recipes fetched successfully", page)
}

// SearchRecipes обрабатывает GET /recipes/search?query=
func (h *RecipeHandler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.respondWithError(w, r, apperror.NewValidationError("Query parameter is required", nil))
		return
	}

	recipes, err := h.recipeUseCase.SearchRecipes(r.Context(), query)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, "Recipes fetched successfully", recipes)
}

// UpdateProfile обрабатывает POST /users/{userID}/profile
func (h *RecipeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		h.respondWithError(w, r, apperror.NewValidationError("Invalid user ID", err))
		return
	}

	var upd domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.respondWithError(w, r, apperror.NewValidationError("Missing required fields or incorrect format", err))
		return
	}

	profile, err := h.profileUseCase.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, "Profile updated successfully", profile)
}

type engagementRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

// PostComment обрабатывает POST /recipes/{recipeID}/comments.
// Событие уходит в очередь, запись в бд делает воркер.
func (h *RecipeHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	h.postEngagement(w, r, payloads.EngagementKindComment, "Comment submitted successfully")
}

// PostLike обрабатывает POST /recipes/{recipeID}/likes
func (h *RecipeHandler) PostLike(w http.ResponseWriter, r *http.Request) {
	h.postEngagement(w, r, payloads.EngagementKindLike, "Like submitted successfully")
}

func (h *RecipeHandler) postEngagement(w http.ResponseWriter, r *http.Request, kind string, message string) {
	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil || recipeID <= 0 {
		h.respondWithError(w, r, apperror.NewValidationError("Invalid recipe ID", err))
		return
	}

	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, r, apperror.NewValidationError("Missing required fields or incorrect format", err))
		return
	}

	payload := payloads.EngagementPayload{
		Kind:     kind,
		RecipeID: recipeID,
		UserID:   req.UserID,
		Content:  req.Content,
	}

	if err := h.engagementUseCase.QueueEngagementEvent(r.Context(), payload); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusAccepted, message, nil)
}

// Health обрабатывает GET /healthz
func (h *RecipeHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, "ok", nil)
}
