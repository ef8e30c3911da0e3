package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/internal/service/user"
)

type userService interface {
	Init(ctx context.Context, input user.InitInput) (*domain.User, error)
	GetProfile(ctx context.Context) (*domain.User, error)
}

// UserHandler serves user provisioning and profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type initUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type userResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Init handles POST /api/users/init. An empty body is accepted.
func (h *UserHandler) Init(w http.ResponseWriter, r *http.Request) {
	var req initUserRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	u, err := h.svc.Init(r.Context(), user.InitInput{Email: req.Email, Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID.String(),
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		CreatedAt:  u.CreatedAt,
	}
}
