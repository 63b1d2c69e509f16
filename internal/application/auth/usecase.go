// Package auth contiene los casos de uso de registro y login de usuarios.
package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/proposal-pro/internal/application/dto"
	"github.com/tu-usuario/proposal-pro/internal/domain"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/repository"
	"github.com/tu-usuario/proposal-pro/pkg/config"
	"github.com/tu-usuario/proposal-pro/pkg/jwt"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
)

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg, log: log.WithComponent("auth")}
}

// Register crea un usuario nuevo con la contraseña hasheada con bcrypt.
// Rol vacío queda como "office"; el estado inicial es siempre "active".
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOffice
	}
	if role != entity.RoleAdmin && role != entity.RoleOffice {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}

	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, fmt.Errorf("auth: crear usuario: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// Login valida credenciales y devuelve un token JWT firmado.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login exitoso")
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
