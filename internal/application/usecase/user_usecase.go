package usecase

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// UserUseCase lecturas de usuarios (el alta vive en auth.UseCase).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetByID devuelve un usuario sin exponer el hash de password.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return ToUserResponse(user), nil
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, user := range users {
		out.Items = append(out.Items, *ToUserResponse(user))
	}
	return out, nil
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
