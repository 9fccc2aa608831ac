package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
)

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=150"`
	Role  string `json:"role" binding:"required,oneof=customer seller admin"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Role string `json:"role" binding:"required,oneof=customer seller admin"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsManager bool      `json:"is_manager"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsManager: u.IsManager,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []identity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out
}
