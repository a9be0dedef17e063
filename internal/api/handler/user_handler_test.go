package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

func sampleUser() *domain.User {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "u1",
		Name:         "Amy",
		Email:        "amy@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserHandler_Create(t *testing.T) {
	users := &stubUserService{
		createUser: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Role != domain.RoleMember {
				t.Fatalf("unexpected role %q", input.Role)
			}
			return sampleUser(), nil
		},
	}
	h := NewUserHandler(users)

	c, rec := testContext(t, http.MethodPost, "/user",
		`{"name":"Amy","email":"amy@example.com","password":"s3cretpass","role":"Member"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	// The bcrypt hash must never appear in a response body.
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("response leaks password hash: %s", rec.Body.String())
	}
	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "u1" || resp.Role != "Member" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Create_ValidationFailures(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	bodies := []string{
		`{"name":"Amy","email":"not-an-email","password":"s3cretpass","role":"Member"}`,
		`{"name":"Amy","email":"amy@example.com","password":"short","role":"Member"}`,
		`{"name":"Amy","email":"amy@example.com","password":"s3cretpass","role":"Owner"}`,
		`{"email":"amy@example.com","password":"s3cretpass","role":"Member"}`,
	}
	for _, body := range bodies {
		c, _ := testContext(t, http.MethodPost, "/user", body)
		assertStatus(t, h.Create(c), http.StatusUnprocessableEntity)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	users := &stubUserService{
		createUser: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(users)

	c, _ := testContext(t, http.MethodPost, "/user",
		`{"name":"Amy","email":"amy@example.com","password":"s3cretpass","role":"Member"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	users := &stubUserService{
		getUser: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, _ := testContext(t, http.MethodGet, "/user/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound passthrough, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	users := &stubUserService{
		updateUser: func(_ context.Context, id, name string) (*domain.User, error) {
			if id != "u1" || name != "Amy Jones" {
				t.Fatalf("unexpected update args: %s / %s", id, name)
			}
			u := sampleUser()
			u.Name = name
			return u, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := testContext(t, http.MethodPut, "/user/u1", `{"name":"Amy Jones"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	users := &stubUserService{
		deleteUser: func(_ context.Context, id string) error {
			if id != "u1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewUserHandler(users)

	c, rec := testContext(t, http.MethodDelete, "/user/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", rec.Body.String())
	}
}

func TestUserHandler_List_PassesPageParams(t *testing.T) {
	users := &stubUserService{
		listUsers: func(_ context.Context, page ports.PageRequest) (*ports.UserPage, error) {
			if page.Number != 2 || page.Size != 10 {
				t.Fatalf("unexpected page request: %+v", page)
			}
			return &ports.UserPage{
				Items:    []*domain.User{sampleUser()},
				Metadata: ports.PageMetadata{Count: 11, NoOfPages: 2, CurrentPage: 2},
			}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := testContext(t, http.MethodGet, "/user?pageNumber=2&pageSize=10", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Metadata.Count != 11 || resp.Metadata.CurrentPage != 2 {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
}

func TestUserHandler_FilterByName(t *testing.T) {
	users := &stubUserService{
		filterUsersByName: func(_ context.Context, name string, _ ports.PageRequest) (*ports.UserPage, error) {
			if name != "amy" {
				t.Fatalf("unexpected name %q", name)
			}
			return &ports.UserPage{
				Items:    []*domain.User{sampleUser()},
				Metadata: ports.PageMetadata{Count: 1, NoOfPages: 1, CurrentPage: 1},
			}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := testContext(t, http.MethodGet, "/user/filter/amy", "")
	c.SetParamNames("name")
	c.SetParamValues("amy")
	if err := h.FilterByName(c); err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
