package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usergate/usergate/internal/model"
	"github.com/usergate/usergate/internal/repository"
)

// minAdultAge is the age threshold a user must strictly exceed to be returned.
const minAdultAge = 21

// UserFinder defines the data access needed by UserHandler.
type UserFinder interface {
	FindUserByIDAndMinAge(ctx context.Context, id primitive.ObjectID, minAge int) (*model.User, error)
}

// UserHandler handles HTTP requests for user lookups.
type UserHandler struct {
	store  UserFinder
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserFinder, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logger,
	}
}

// Get handles GET /users/{id}.
//
// The path parameter must be a store-native identifier (24-char hex).
// A missing record and a record failing the age threshold both yield the
// same 404 payload; callers cannot tell the two apart.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	h.logger.Info("user_lookup", "user_id", id)

	user, err := h.store.FindUserByIDAndMinAge(r.Context(), oid, minAdultAge)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found or underage")
			return
		}
		h.logger.Error("user_lookup_failed", "user_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
