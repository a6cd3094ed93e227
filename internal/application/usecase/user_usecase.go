package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase operaciones del panel admin sobre usuarios. Cada operación
// verifica el permiso correspondiente del actor: listar pide
// access_admin_panel, crear/editar piden manage_users y borrar delete_users.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios. Requiere access_admin_panel.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest, actor stock.Actor) ([]*dto.UserResponse, error) {
	if !authz.Resolve(actor.Role).AccessAdminPanel {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	users, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario desde el panel. Requiere manage_users. Solo un
// admin puede otorgar el rol admin.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest, actor stock.Actor) (*dto.UserResponse, error) {
	perms := authz.Resolve(actor.Role)
	if !perms.ManageUsers {
		return nil, domain.ErrForbidden
	}
	role := authz.RoleFromString(in.Role)
	if role == authz.RoleAdmin && actor.Role != authz.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role.String(),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update edita nombre, rol y estado. Requiere manage_users; otorgar o quitar
// el rol admin requiere ser admin.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest, actor stock.Actor) (*dto.UserResponse, error) {
	if !authz.Resolve(actor.Role).ManageUsers {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != "" {
		newRole := authz.RoleFromString(in.Role)
		touchesAdmin := newRole == authz.RoleAdmin || authz.RoleFromString(user.Role) == authz.RoleAdmin
		if touchesAdmin && actor.Role != authz.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		user.Role = newRole.String()
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Status == "active" || in.Status == "inactive" {
		user.Status = in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Requiere delete_users (solo admin). Un admin
// no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, id string, actor stock.Actor) error {
	if !authz.Resolve(actor.Role).DeleteUsers {
		return domain.ErrForbidden
	}
	if id == actor.ID {
		return domain.ErrConflict
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}
