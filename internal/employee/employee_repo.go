package employee

import (
	"context"

	"hr-portal/internal/store"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, e Employee) error
	Patch(ctx context.Context, id string, partial map[string]any) (*Employee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *store.Collection[Employee]
}

func NewRepository(client store.Client) Repository {
	return &repository{col: store.NewCollection[Employee](client, store.CollectionEmployees)}
}

func (r *repository) Get(ctx context.Context, id string) (*Employee, error) {
	return r.col.Get(ctx, id)
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	return r.col.List(ctx, nil)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	matches, err := r.col.List(ctx, store.Filter{"email": email})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, store.ErrNotFound
	}
	return &matches[0], nil
}

func (r *repository) Create(ctx context.Context, e Employee) error {
	return r.col.Create(ctx, e.ID, e)
}

func (r *repository) Patch(ctx context.Context, id string, partial map[string]any) (*Employee, error) {
	return r.col.Patch(ctx, id, partial)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}
