package serviceimpl

import (
	"context"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

// In-memory repository fakes for service tests. They mirror the sentinel
// error contract of the real GORM implementations.

type fakeUserRepo struct {
	users    map[uint]*models.User
	nextID   uint
	replaced []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Replace(_ context.Context, id uint, user *models.User) error {
	stored, ok := r.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if user.Version > 0 && user.Version != stored.Version {
		return repositories.ErrConflict
	}
	copied := *user
	copied.ID = id
	copied.Version = stored.Version + 1
	r.users[id] = &copied
	r.replaced = append(r.replaced, id)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeTaskRepo struct {
	tasks  map[uint]*models.Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*models.Task), nextID: 1}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uint) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(r.tasks))
	for id := uint(1); id < r.nextID; id++ {
		if task, ok := r.tasks[id]; ok {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) ListByUserID(_ context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	for id := uint(1); id < r.nextID; id++ {
		if task, ok := r.tasks[id]; ok && task.UserID == userID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) Replace(_ context.Context, id uint, task *models.Task) error {
	stored, ok := r.tasks[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if task.Version > 0 && task.Version != stored.Version {
		return repositories.ErrConflict
	}
	copied := *task
	copied.ID = id
	copied.Version = stored.Version + 1
	r.tasks[id] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.tasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
