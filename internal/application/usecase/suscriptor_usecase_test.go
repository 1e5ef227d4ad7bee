package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type fakeSuscriptorRepo struct {
	porEmail  map[string]*entity.Suscriptor
	failGet   error
	failCrear error
}

func newFakeSuscriptorRepo() *fakeSuscriptorRepo {
	return &fakeSuscriptorRepo{porEmail: map[string]*entity.Suscriptor{}}
}

func (f *fakeSuscriptorRepo) Create(s *entity.Suscriptor) error {
	if f.failCrear != nil {
		return f.failCrear
	}
	f.porEmail[s.Email] = s
	return nil
}

func (f *fakeSuscriptorRepo) GetByEmail(email string) (*entity.Suscriptor, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	return f.porEmail[email], nil
}

func (f *fakeSuscriptorRepo) ListAll() ([]*entity.Suscriptor, error) {
	out := make([]*entity.Suscriptor, 0, len(f.porEmail))
	for _, s := range f.porEmail {
		out = append(out, s)
	}
	return out, nil
}

type fakeMailer struct {
	enviados []string
}

func (f *fakeMailer) Enviar(para, asunto, cuerpo string) error {
	f.enviados = append(f.enviados, para)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestSuscribirIdempotente(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	uc := NewSuscriptorUseCase(repo, nil, testLogger())

	assert.Equal(t, SuscribirOK, uc.Suscribir("ana@example.com", "Tienda"))
	assert.Equal(t, SuscribirYaExistia, uc.Suscribir("ana@example.com", "Tienda"))
	assert.Len(t, repo.porEmail, 1, "re-suscribirse no duplica la fila")
}

func TestSuscribirNormalizaEmail(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	uc := NewSuscriptorUseCase(repo, nil, testLogger())

	require.Equal(t, SuscribirOK, uc.Suscribir("  ANA@Example.com ", ""))
	_, ok := repo.porEmail["ana@example.com"]
	assert.True(t, ok)
}

func TestSuscribirEmailInvalido(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	uc := NewSuscriptorUseCase(repo, nil, testLogger())

	assert.Equal(t, SuscribirEmailInvalido, uc.Suscribir("sin-arroba", "Tienda"))
	assert.Empty(t, repo.porEmail)
}

func TestSuscribirErrorInternoNoPropaga(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	repo.failCrear = errors.New("db caída")
	uc := NewSuscriptorUseCase(repo, nil, testLogger())

	// El fallo interno se devuelve como resultado, no como error: el handler
	// responde 200 con success=false.
	assert.Equal(t, SuscribirErrorInterno, uc.Suscribir("ana@example.com", "Tienda"))
}

func TestSuscribirDuplicadoConcurrenteEsYaExistia(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	repo.failCrear = domain.ErrDuplicate
	mailer := &fakeMailer{}
	uc := NewSuscriptorUseCase(repo, mailer, testLogger())

	// El GetByEmail no vio la fila pero el insert chocó con el unique:
	// otro request se adelantó. Sigue siendo idempotente, no error interno.
	assert.Equal(t, SuscribirYaExistia, uc.Suscribir("ana@example.com", "Tienda"))
	assert.Empty(t, mailer.enviados, "el duplicado no dispara bienvenida")
}

func TestSuscribirEnviaBienvenida(t *testing.T) {
	repo := newFakeSuscriptorRepo()
	mailer := &fakeMailer{}
	uc := NewSuscriptorUseCase(repo, mailer, testLogger())

	require.Equal(t, SuscribirOK, uc.Suscribir("ana@example.com", "Tienda"))
	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, "ana@example.com", mailer.enviados[0])

	// Ya suscripto: no se reenvía el correo.
	require.Equal(t, SuscribirYaExistia, uc.Suscribir("ana@example.com", "Tienda"))
	assert.Len(t, mailer.enviados, 1)
}
