package handler

import (
	"time"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=Admin Member"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// userResponse is the transport view of a user. The password hash never
// leaves the domain layer.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type pageMetadataResponse struct {
	Count       int64 `json:"count"`
	NoOfPages   int   `json:"noOfPages"`
	CurrentPage int   `json:"currentPage"`
}

func toPageMetadata(m ports.PageMetadata) pageMetadataResponse {
	return pageMetadataResponse{Count: m.Count, NoOfPages: m.NoOfPages, CurrentPage: m.CurrentPage}
}

type listUsersResponse struct {
	Items    []userResponse       `json:"items"`
	Metadata pageMetadataResponse `json:"metadata"`
}

func toListUsersResponse(page *ports.UserPage) listUsersResponse {
	items := make([]userResponse, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, toUserResponse(u))
	}
	return listUsersResponse{Items: items, Metadata: toPageMetadata(page.Metadata)}
}
