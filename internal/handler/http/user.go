package http

import (
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userRepo user.UserRepository
}

func NewUserHandler(userRepo user.UserRepository) UserHandler {
	return &userHandlerImpl{userRepo: userRepo}
}

// List implements UserHandler. Returns public identities only, for the
// task assignee picker.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	identities := make([]user.Identity, 0, len(users))
	for _, u := range users {
		identities = append(identities, u.Identity())
	}

	response.Success(w, identities)
}
