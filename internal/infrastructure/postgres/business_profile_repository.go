package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/repository"
)

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

// BusinessProfileRepo implementación de BusinessProfileRepository.
// El perfil es fila única con id = 1 (sistema single-tenant).
type BusinessProfileRepo struct {
	q Querier
}

// NewBusinessProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessProfileRepository(q Querier) *BusinessProfileRepo {
	return &BusinessProfileRepo{q: q}
}

// Get retorna el perfil o (nil, nil) si nunca se guardó.
func (r *BusinessProfileRepo) Get() (*entity.BusinessProfile, error) {
	query := `
		SELECT business_name, address, phone, email, COALESCE(logo_path, '')
		FROM business_profile WHERE id = 1`
	var p entity.BusinessProfile
	err := r.q.QueryRow(context.Background(), query).Scan(
		&p.BusinessName, &p.Address, &p.Phone, &p.Email, &p.LogoPath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &p, nil
}

// Save crea o actualiza la fila única (upsert).
func (r *BusinessProfileRepo) Save(profile *entity.BusinessProfile) error {
	query := `
		INSERT INTO business_profile (id, business_name, address, phone, email, logo_path)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
		    address       = EXCLUDED.address,
		    phone         = EXCLUDED.phone,
		    email         = EXCLUDED.email,
		    logo_path     = EXCLUDED.logo_path`
	_, err := r.q.Exec(context.Background(), query,
		profile.BusinessName, profile.Address, profile.Phone, profile.Email, profile.LogoPath,
	)
	if err != nil {
		return fmt.Errorf("save business profile: %w", err)
	}
	return nil
}
