package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porID    map[string]*entity.Usuario
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		porID:    map[string]*entity.Usuario{},
		porEmail: map[string]*entity.Usuario{},
	}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	f.porID[u.ID] = u
	f.porEmail[u.Email] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}

func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error { return nil }
func (f *fakeUsuarioRepo) ListConPedidos() ([]*entity.UsuarioConPedidos, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) Delete(id string) error { return nil }

var cfgPrueba = JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "tienda-api"}

func TestRegistroYLogin(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewAuthUseCase(repo, cfgPrueba)

	out, err := uc.Registro(dto.RegistroRequest{
		Nombre:   "Ana",
		Email:    "Ana@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email, "el email se normaliza en minúsculas")
	assert.Equal(t, entity.RolCliente, out.Rol, "toda cuenta nueva nace como cliente")

	login, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	userID, rol, err := jwt.Parse(cfgPrueba.Secret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, out.ID, userID)
	assert.Equal(t, entity.RolCliente, rol)
}

func TestRegistroEmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewAuthUseCase(repo, cfgPrueba)

	_, err := uc.Registro(dto.RegistroRequest{Nombre: "Ana", Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Registro(dto.RegistroRequest{Nombre: "Otra", Email: "ana@example.com", Password: "password456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegistroPasswordCorto(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsuarioRepo(), cfgPrueba)

	_, err := uc.Registro(dto.RegistroRequest{Nombre: "Ana", Email: "ana@example.com", Password: "corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginCredencialesIncorrectas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewAuthUseCase(repo, cfgPrueba)

	_, err := uc.Registro(dto.RegistroRequest{Nombre: "Ana", Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	// Mismo error para cuenta inexistente y password incorrecto.
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
