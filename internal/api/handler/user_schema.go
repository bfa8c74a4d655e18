package handler

import "github.com/backoffice/user-management-api/internal/core/domain"

// messageResponse is the envelope for mutation success messages.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Name                 string `json:"name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

type updateUserRequest struct {
	Name                 string `json:"name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

// userResponse wraps a single user. User is null when the id does not exist:
// single-user reads respond 200 with an empty payload instead of 404.
type userResponse struct {
	User *domain.User `json:"user"`
}
