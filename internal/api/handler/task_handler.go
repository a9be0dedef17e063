package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for the task registry.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /task. The caller becomes the task's creator; any
// status or priority in the payload is ignored.
//
// @Summary      Create a task
// @Tags         task
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /task [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}, claim)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /task/:id.
//
// @Summary      Get a task by id
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /task/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// List handles GET /task.
//
// @Summary      List tasks
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        pageNumber  query     int  false  "Page number (default 1)"
// @Param        pageSize    query     int  false  "Page size (default 5)"
// @Success      200         {object}  listTasksResponse
// @Router       /task [get]
func (h *TaskHandler) List(c echo.Context) error {
	page, err := h.service.ListTasks(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTasksResponse(page))
}

// Assign handles PUT /task/assign-task/:taskId/:userId.
//
// @Summary      Assign a task to a user
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path      string  true  "Task id"
// @Param        userId  path      string  true  "Assignee user id"
// @Success      200     {object}  taskResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /task/assign-task/{taskId}/{userId} [put]
func (h *TaskHandler) Assign(c echo.Context) error {
	task, err := h.service.AssignTask(c.Request().Context(), c.Param("taskId"), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// ChangePriority handles PUT /task/change-task-priority/:taskId?priority=...
//
// @Summary      Change task priority
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        taskId    path      string  true  "Task id"
// @Param        priority  query     string  true  "Low | Medium | High"
// @Success      200       {object}  taskResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /task/change-task-priority/{taskId} [put]
func (h *TaskHandler) ChangePriority(c echo.Context) error {
	priority := domain.TaskPriority(c.QueryParam("priority"))
	task, err := h.service.ChangePriority(c.Request().Context(), c.Param("taskId"), priority)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// ChangeStatus handles PUT /task/change-task-status/:taskId?status=...
//
// @Summary      Change task status
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path      string  true  "Task id"
// @Param        status  query     string  true  "Open | InProgress | Closed"
// @Success      200     {object}  taskResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /task/change-task-status/{taskId} [put]
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	status := domain.TaskStatus(c.QueryParam("status"))
	task, err := h.service.ChangeStatus(c.Request().Context(), c.Param("taskId"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// ChangeDescription handles PUT /task/change-task-description/:taskId?description=...
//
// @Summary      Change task description
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        taskId       path      string  true  "Task id"
// @Param        description  query     string  true  "New description"
// @Success      200          {object}  taskResponse
// @Failure      404          {object}  errorResponse
// @Router       /task/change-task-description/{taskId} [put]
func (h *TaskHandler) ChangeDescription(c echo.Context) error {
	task, err := h.service.ChangeDescription(c.Request().Context(), c.Param("taskId"), c.QueryParam("description"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /task/delete-task/:taskId. Hard delete, irreversible.
//
// @Summary      Delete a task
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path      string  true  "Task id"
// @Success      200     {object}  deleteTaskResponse
// @Failure      404     {object}  errorResponse
// @Router       /task/delete-task/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTask(c.Request().Context(), c.Param("taskId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteTaskResponse{Success: true})
}

// Filter handles GET /task/filter?status=&priority=.
//
// @Summary      Filter tasks by status and priority
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Open | InProgress | Closed"
// @Param        priority    query     string  false  "Low | Medium | High"
// @Param        pageNumber  query     int     false  "Page number (default 1)"
// @Param        pageSize    query     int     false  "Page size (default 5)"
// @Success      200         {object}  listTasksResponse
// @Router       /task/filter [get]
func (h *TaskHandler) Filter(c echo.Context) error {
	page, err := h.service.FilterTasks(c.Request().Context(), filterInput(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTasksResponse(page))
}

// FilterForUser handles GET /task/filter/:userId?status=&priority=.
//
// @Summary      Filter tasks assigned to a user
// @Tags         task
// @Produce      json
// @Security     BearerAuth
// @Param        userId      path      string  true   "Assignee user id"
// @Param        status      query     string  false  "Open | InProgress | Closed"
// @Param        priority    query     string  false  "Low | Medium | High"
// @Param        pageNumber  query     int     false  "Page number (default 1)"
// @Param        pageSize    query     int     false  "Page size (default 5)"
// @Success      200         {object}  listTasksResponse
// @Failure      400         {object}  errorResponse
// @Router       /task/filter/{userId} [get]
func (h *TaskHandler) FilterForUser(c echo.Context) error {
	page, err := h.service.FilterTasksForUser(c.Request().Context(), c.Param("userId"), filterInput(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTasksResponse(page))
}

func filterInput(c echo.Context) ports.FilterTasksInput {
	return ports.FilterTasksInput{
		Status:   domain.TaskStatus(c.QueryParam("status")),
		Priority: domain.TaskPriority(c.QueryParam("priority")),
	}
}
