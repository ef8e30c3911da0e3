package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/internal/service/habit"
)

type habitService interface {
	CreateHabit(ctx context.Context, input habit.CreateHabitInput) (*domain.Habit, error)
	ListHabits(ctx context.Context) ([]domain.Habit, error)
	AssignHabits(ctx context.Context, input habit.AssignHabitsInput) ([]domain.UserHabit, error)
	UserHabits(ctx context.Context) ([]domain.UserHabit, error)
	RemoveHabit(ctx context.Context, habitID uuid.UUID) error
	UpdateImpact(ctx context.Context, input habit.UpdateImpactInput) (*domain.UserHabit, error)
}

// HabitHandler serves the habit catalog and the user's tracked habits.
type HabitHandler struct {
	svc habitService
	log *slog.Logger
}

func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habit")}
}

type createHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type assignHabitsRequest struct {
	HabitIDs []uuid.UUID `json:"habitIds"`
}

type updateImpactRequest struct {
	Impact        int      `json:"impact"`
	AverageImpact *float64 `json:"averageImpact"`
}

type habitResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type userHabitResponse struct {
	ID            string    `json:"id"`
	HabitID       string    `json:"habitId"`
	HabitTitle    string    `json:"habitTitle"`
	ImpactRating  *int      `json:"impactRating"`
	AverageImpact *float64  `json:"averageImpact"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateHabit handles POST /api/habits/catalog.
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.CreateHabit(r.Context(), habit.CreateHabitInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHabitResponse(*created))
}

// ListHabits handles GET /api/habits/catalog.
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListHabits(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]habitResponse, 0, len(list))
	for _, hb := range list {
		resp = append(resp, toHabitResponse(hb))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Assign handles POST /api/habits.
func (h *HabitHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignHabitsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.AssignHabits(r.Context(), habit.AssignHabitsInput{HabitIDs: req.HabitIDs})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserHabitResponses(created))
}

// List handles GET /api/habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.UserHabits(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserHabitResponses(list))
}

// Remove handles DELETE /api/habits/{id}.
func (h *HabitHandler) Remove(w http.ResponseWriter, r *http.Request) {
	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid habit id")
		return
	}

	if err := h.svc.RemoveHabit(r.Context(), habitID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateImpact handles PATCH /api/habits/{id}/impact.
func (h *HabitHandler) UpdateImpact(w http.ResponseWriter, r *http.Request) {
	userHabitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user habit id")
		return
	}

	var req updateImpactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.svc.UpdateImpact(r.Context(), habit.UpdateImpactInput{
		UserHabitID:   userHabitID,
		Impact:        req.Impact,
		AverageImpact: req.AverageImpact,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserHabitResponse(*updated))
}

func toHabitResponse(hb domain.Habit) habitResponse {
	return habitResponse{
		ID:          hb.ID.String(),
		Title:       hb.Title,
		Description: hb.Description,
		CreatedAt:   hb.CreatedAt,
	}
}

func toUserHabitResponse(uh domain.UserHabit) userHabitResponse {
	return userHabitResponse{
		ID:            uh.ID.String(),
		HabitID:       uh.HabitID.String(),
		HabitTitle:    uh.HabitTitle,
		ImpactRating:  uh.ImpactRating,
		AverageImpact: uh.AverageImpact,
		CreatedAt:     uh.CreatedAt,
	}
}

func toUserHabitResponses(list []domain.UserHabit) []userHabitResponse {
	resp := make([]userHabitResponse, 0, len(list))
	for _, uh := range list {
		resp = append(resp, toUserHabitResponse(uh))
	}
	return resp
}
