package repository

import "github.com/tu-usuario/proposal-pro/internal/domain/entity"

// UserRepository persiste usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail retorna (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
}
