package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/internal/service/generation"
)

type generationService interface {
	Create(ctx context.Context, input generation.CreateInput) (*domain.Generation, error)
	List(ctx context.Context) ([]domain.Generation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GenerationHandler serves saved generations of the current user.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type createGenerationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Note        string `json:"note"`
	ImageLink   string `json:"imageLink"`
}

type generationResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Note        string    `json:"note,omitempty"`
	ImageLink   string    `json:"imageLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create handles POST /api/generations.
func (h *GenerationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGenerationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), generation.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Note:        req.Note,
		ImageLink:   req.ImageLink,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGenerationResponse(*created))
}

// List handles GET /api/generations.
func (h *GenerationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]generationResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, toGenerationResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/generations/{id}.
func (h *GenerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toGenerationResponse(g domain.Generation) generationResponse {
	return generationResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Note:        g.Note,
		ImageLink:   g.ImageLink,
		CreatedAt:   g.CreatedAt,
	}
}
