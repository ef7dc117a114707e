package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	Expiration int // minutos
}

// UseCase registro y login de usuarios. Los passwords se guardan con bcrypt
// y el token JWT lleva userID y role para el middleware RBAC.
type UseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{userRepo: userRepo, cfg: cfg}
}

// Register crea un usuario nuevo. Email repetido -> ErrEmailAlreadyExists.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCashier
	}
	switch role {
	case entity.RoleAdmin, entity.RoleKeeper, entity.RoleCashier:
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login valida credenciales y emite un token JWT.
// Email inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Role, uc.cfg.JWTIssuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *usecase.ToUserResponse(user)}, nil
}

// Me devuelve el usuario autenticado a partir del userID del token.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return usecase.ToUserResponse(user), nil
}
