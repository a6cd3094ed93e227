package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func sampleUser(id, role string) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     id + "@almacen.co",
		FirstName: "Usuario",
		LastName:  id,
		Role:      role,
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_ManagerNoPuedeOtorgarAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "nuevo@almacen.co",
		Password: "supersegura",
		Role:     "admin",
	}, stock.Actor{ID: "m-1", Role: authz.RoleManager})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.users)
}

func TestUserCreate_ManagerCreaEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email:     "nuevo@almacen.co",
		Password:  "supersegura",
		FirstName: "Ana",
		Role:      "employee",
	}, stock.Actor{ID: "m-1", Role: authz.RoleManager})

	require.NoError(t, err)
	assert.Equal(t, "employee", out.Role)
	assert.Len(t, repo.users, 1)
}

func TestUserCreate_RolDesconocidoQuedaEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "raro@almacen.co",
		Password: "supersegura",
		Role:     "superuser",
	}, stock.Actor{ID: "a-1", Role: authz.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, "employee", out.Role)
}

func TestUserCreate_PasswordCorta(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "x@almacen.co",
		Password: "corta",
	}, stock.Actor{ID: "a-1", Role: authz.RoleAdmin})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_ManagerNoTocaAdmins(t *testing.T) {
	repo := newFakeUserRepo(sampleUser("a-1", "admin"))
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "a-1", dto.UpdateUserRequest{Role: "employee"},
		stock.Actor{ID: "m-1", Role: authz.RoleManager})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "admin", repo.users["a-1"].Role, "el rol no debe cambiar")
}

func TestUserDelete_SoloAdmin(t *testing.T) {
	repo := newFakeUserRepo(sampleUser("e-1", "employee"))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), "e-1", stock.Actor{ID: "m-1", Role: authz.RoleManager})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), "e-1", stock.Actor{ID: "a-1", Role: authz.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, repo.users)
}

func TestUserDelete_AdminNoSeBorraASiMismo(t *testing.T) {
	repo := newFakeUserRepo(sampleUser("a-1", "admin"))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), "a-1", stock.Actor{ID: "a-1", Role: authz.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotEmpty(t, repo.users)
}

func TestUserList_EmployeeSinPanel(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(sampleUser("e-1", "employee")))

	_, err := uc.List(context.Background(), dto.PageRequest{}, stock.Actor{ID: "e-1", Role: authz.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
