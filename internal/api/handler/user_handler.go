package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /user (admin only).
//
// @Summary      Create a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /user.
//
// @Summary      List users
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        pageNumber  query     int  false  "Page number (default 1)"
// @Param        pageSize    query     int  false  "Page size (default 5)"
// @Success      200         {object}  listUsersResponse
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := h.service.ListUsers(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListUsersResponse(page))
}

// Update handles PUT /user/:id (admin only). Name is the only mutable field.
//
// @Summary      Rename a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "New name"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /user/:id (admin only). Deletion is permanent.
//
// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// FilterByName handles GET /user/filter/:name — case-insensitive
// name-substring search, paginated.
//
// @Summary      Filter users by name
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        name        path      string  true   "Name substring"
// @Param        pageNumber  query     int     false  "Page number (default 1)"
// @Param        pageSize    query     int     false  "Page size (default 5)"
// @Success      200         {object}  listUsersResponse
// @Router       /user/filter/{name} [get]
func (h *UserHandler) FilterByName(c echo.Context) error {
	page, err := h.service.FilterUsersByName(c.Request().Context(), c.Param("name"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListUsersResponse(page))
}
