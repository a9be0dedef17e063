package service

import (
	"context"
	"sort"
	"strings"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They mirror the
// repository contracts, including the sentinel errors and newest-first
// ordering.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrUserExists
		}
	}
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name = name
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) matching(filter ports.UserFilter) []*domain.User {
	var out []*domain.User
	for _, u := range r.users {
		if filter.NameContains != "" &&
			!strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.NameContains)) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *stubUserRepo) Count(_ context.Context, filter ports.UserFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter, offset, limit int) ([]*domain.User, error) {
	all := r.matching(filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type stubTaskRepo struct {
	tasks map[string]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) error {
	r.tasks[t.ID] = cloneTask(t)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) mutate(id string, fn func(*domain.Task)) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	fn(t)
	t.UpdatedAt = t.UpdatedAt.Add(1) // monotonic bump, enough for assertions
	return cloneTask(t), nil
}

func (r *stubTaskRepo) SetAssignee(_ context.Context, id, userID string) (*domain.Task, error) {
	return r.mutate(id, func(t *domain.Task) { t.AssignedTo = userID })
}

func (r *stubTaskRepo) SetStatus(_ context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	return r.mutate(id, func(t *domain.Task) { t.Status = status })
}

func (r *stubTaskRepo) SetPriority(_ context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	return r.mutate(id, func(t *domain.Task) { t.Priority = priority })
}

func (r *stubTaskRepo) SetDescription(_ context.Context, id, description string) (*domain.Task, error) {
	return r.mutate(id, func(t *domain.Task) { t.Description = description })
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) matching(filter ports.TaskFilter) []*domain.Task {
	var out []*domain.Task
	for _, t := range r.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *stubTaskRepo) Count(_ context.Context, filter ports.TaskFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.TaskFilter, offset, limit int) ([]*domain.Task, error) {
	all := r.matching(filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
