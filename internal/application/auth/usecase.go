package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registro crea una cuenta de cliente: hashea el password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
// El rol siempre nace como cliente; a admin solo se llega por promoción.
func (uc *AuthUseCase) Registro(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if in.Nombre == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Email:           email,
		PasswordHash:    string(hash),
		Rol:             entity.RolCliente,
		EstadoMayorista: entity.MayoristaNinguno,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return usecase.ToUsuarioResponse(u), nil
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo error para no
// revelar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *usecase.ToUsuarioResponse(u),
	}, nil
}

// Perfil devuelve los datos del usuario autenticado. (nil, nil) si la cuenta
// ya no existe.
func (uc *AuthUseCase) Perfil(usuarioID string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return usecase.ToUsuarioResponse(u), nil
}
