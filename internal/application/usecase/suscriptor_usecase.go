package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// SuscribirResultado clasifica el desenlace de un alta al newsletter.
// El handler siempre responde HTTP 200; este resultado decide success y mensaje.
type SuscribirResultado int

const (
	SuscribirOK SuscribirResultado = iota
	SuscribirYaExistia
	SuscribirEmailInvalido
	SuscribirErrorInterno
)

// SuscriptorUseCase casos de uso del newsletter.
type SuscriptorUseCase struct {
	repo   repository.SuscriptorRepository
	mailer Mailer // nil = correo de bienvenida deshabilitado
	log    *logger.Logger
}

// NewSuscriptorUseCase construye el caso de uso.
func NewSuscriptorUseCase(repo repository.SuscriptorRepository, mailer Mailer, log *logger.Logger) *SuscriptorUseCase {
	return &SuscriptorUseCase{repo: repo, mailer: mailer, log: log}
}

// Suscribir registra un email en el newsletter. Idempotente: un email ya
// suscripto no es un error. Los fallos de persistencia no se propagan como
// error sino como resultado, para que el handler responda 200 igual.
func (uc *SuscriptorUseCase) Suscribir(email, nombreTienda string) SuscribirResultado {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return SuscribirEmailInvalido
	}
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("newsletter: consulta de suscriptor falló")
		return SuscribirErrorInterno
	}
	if existing != nil {
		return SuscribirYaExistia
	}
	suscriptor := &entity.Suscriptor{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(suscriptor); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Otro request ganó el alta entre el GetByEmail y el insert.
			return SuscribirYaExistia
		}
		uc.log.Error().Err(err).Str("email", email).Msg("newsletter: alta de suscriptor falló")
		return SuscribirErrorInterno
	}
	uc.enviarBienvenida(email, nombreTienda)
	return SuscribirOK
}

// ListAll devuelve todos los suscriptores (admin).
func (uc *SuscriptorUseCase) ListAll() ([]*entity.Suscriptor, error) {
	return uc.repo.ListAll()
}

// enviarBienvenida manda el correo de bienvenida si hay mailer configurado.
// Un fallo de envío no afecta el alta: solo se loguea.
func (uc *SuscriptorUseCase) enviarBienvenida(email, nombreTienda string) {
	if uc.mailer == nil {
		return
	}
	if nombreTienda == "" {
		nombreTienda = "nuestra tienda"
	}
	asunto := fmt.Sprintf("¡Bienvenido al newsletter de %s!", nombreTienda)
	cuerpo := fmt.Sprintf(
		"Gracias por suscribirte al newsletter de %s.\n\nTe vamos a avisar de novedades, lanzamientos y promociones.",
		nombreTienda,
	)
	if err := uc.mailer.Enviar(email, asunto, cuerpo); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("newsletter: correo de bienvenida falló")
	}
}
