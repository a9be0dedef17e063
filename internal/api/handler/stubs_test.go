package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// stubAuthService, stubUserService and stubTaskService implement the service
// ports with overridable function fields so each test wires only what it
// exercises. Unset fields panic, which surfaces accidental calls immediately.

type stubAuthService struct {
	signIn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	validateToken func(ctx context.Context, raw string) (domain.Claim, error)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signIn(ctx, email, password)
}

func (s *stubAuthService) ValidateToken(ctx context.Context, raw string) (domain.Claim, error) {
	return s.validateToken(ctx, raw)
}

type stubUserService struct {
	createUser        func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	getUser           func(ctx context.Context, id string) (*domain.User, error)
	updateUser        func(ctx context.Context, id, name string) (*domain.User, error)
	deleteUser        func(ctx context.Context, id string) error
	listUsers         func(ctx context.Context, page ports.PageRequest) (*ports.UserPage, error)
	filterUsersByName func(ctx context.Context, name string, page ports.PageRequest) (*ports.UserPage, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createUser(ctx, input)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id, name string) (*domain.User, error) {
	return s.updateUser(ctx, id, name)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteUser(ctx, id)
}

func (s *stubUserService) ListUsers(ctx context.Context, page ports.PageRequest) (*ports.UserPage, error) {
	return s.listUsers(ctx, page)
}

func (s *stubUserService) FilterUsersByName(ctx context.Context, name string, page ports.PageRequest) (*ports.UserPage, error) {
	return s.filterUsersByName(ctx, name, page)
}

type stubTaskService struct {
	createTask         func(ctx context.Context, input ports.CreateTaskInput, claim domain.Claim) (*domain.Task, error)
	getTask            func(ctx context.Context, id string) (*domain.Task, error)
	listTasks          func(ctx context.Context, page ports.PageRequest) (*ports.TaskPage, error)
	assignTask         func(ctx context.Context, taskID, userID string) (*domain.Task, error)
	changePriority     func(ctx context.Context, taskID string, priority domain.TaskPriority) (*domain.Task, error)
	changeStatus       func(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
	changeDescription  func(ctx context.Context, taskID, description string) (*domain.Task, error)
	deleteTask         func(ctx context.Context, taskID string) error
	filterTasks        func(ctx context.Context, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error)
	filterTasksForUser func(ctx context.Context, userID string, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error)
}

func (s *stubTaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput, claim domain.Claim) (*domain.Task, error) {
	return s.createTask(ctx, input, claim)
}

func (s *stubTaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.getTask(ctx, id)
}

func (s *stubTaskService) ListTasks(ctx context.Context, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.listTasks(ctx, page)
}

func (s *stubTaskService) AssignTask(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	return s.assignTask(ctx, taskID, userID)
}

func (s *stubTaskService) ChangePriority(ctx context.Context, taskID string, priority domain.TaskPriority) (*domain.Task, error) {
	return s.changePriority(ctx, taskID, priority)
}

func (s *stubTaskService) ChangeStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	return s.changeStatus(ctx, taskID, status)
}

func (s *stubTaskService) ChangeDescription(ctx context.Context, taskID, description string) (*domain.Task, error) {
	return s.changeDescription(ctx, taskID, description)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, taskID string) error {
	return s.deleteTask(ctx, taskID)
}

func (s *stubTaskService) FilterTasks(ctx context.Context, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.filterTasks(ctx, input, page)
}

func (s *stubTaskService) FilterTasksForUser(ctx context.Context, userID string, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.filterTasksForUser(ctx, userID, input, page)
}

// testContext builds an echo context with the request validator installed,
// mirroring the router setup.
func testContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaim(c echo.Context, claim domain.Claim) {
	c.Set(middleware.ClaimKey, claim)
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("expected status %d, got %d", code, httpErr.Code)
	}
}
