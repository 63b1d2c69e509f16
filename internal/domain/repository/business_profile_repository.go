package repository

import "github.com/tu-usuario/proposal-pro/internal/domain/entity"

// BusinessProfileRepository persiste el perfil del negocio (fila única).
type BusinessProfileRepository interface {
	// Get retorna el perfil, o (nil, nil) si nunca se guardó.
	Get() (*entity.BusinessProfile, error)
	// Save crea o actualiza el perfil (upsert).
	Save(profile *entity.BusinessProfile) error
}
