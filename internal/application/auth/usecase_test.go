package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proposal-pro/internal/application/auth"
	"github.com/tu-usuario/proposal-pro/internal/application/dto"
	"github.com/tu-usuario/proposal-pro/internal/domain"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/pkg/config"
	pkgjwt "github.com/tu-usuario/proposal-pro/pkg/jwt"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWT = config.JWTConfig{
	Secret:     "secret-de-prueba-unitaria",
	Expiration: 60,
	Issuer:     "proposal-pro-test",
}

func newAuthUseCase(t *testing.T) (*auth.UseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return auth.NewUseCase(repo, testJWT, log), repo
}

func TestRegister_CreaUsuarioConHashYRolDefault(t *testing.T) {
	uc, repo := newAuthUseCase(t)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el ID se genera en el registro")
	assert.Equal(t, entity.RoleOffice, out.Role, "rol vacío queda como office")
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash,
		"la contraseña nunca se persiste en claro")
}

func TestRegister_EmailDuplicadoRetornaConflicto(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	in := dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"}

	_, err := uc.Register(in)
	require.NoError(t, err)

	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolDesconocidoEsInvalido(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	user, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	// El token es parseable y lleva los claims correctos.
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrectaRetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteRetornaNotFound(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactivaRetornaForbidden(t *testing.T) {
	uc, repo := newAuthUseCase(t)
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	repo.byEmail["ana@example.com"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
