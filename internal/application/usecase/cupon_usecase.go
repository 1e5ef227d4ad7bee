package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	cupondom "github.com/jhoicas/tienda-api/internal/domain/cupon"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CuponUseCase casos de uso de cupones: validación pública y CRUD admin.
type CuponUseCase struct {
	repo repository.CuponRepository
}

// NewCuponUseCase construye el caso de uso.
func NewCuponUseCase(repo repository.CuponRepository) *CuponUseCase {
	return &CuponUseCase{repo: repo}
}

// Validar evalúa un cupón contra un total sin consumir usos. Un cupón
// inexistente o rechazado no es un error HTTP: se responde valido=false
// con el motivo.
func (uc *CuponUseCase) Validar(in dto.ValidarCuponRequest) (*dto.ValidarCuponResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &dto.ValidarCuponResponse{Valido: false, Descuento: decimal.Zero, Motivo: "cupón no encontrado"}, nil
	}
	descuento, err := cupondom.Calcular(c, in.Total, time.Now())
	if err != nil {
		return &dto.ValidarCuponResponse{Valido: false, Descuento: decimal.Zero, Motivo: err.Error()}, nil
	}
	return &dto.ValidarCuponResponse{Valido: true, Descuento: descuento}, nil
}

// ListAll devuelve todos los cupones (admin).
func (uc *CuponUseCase) ListAll() ([]dto.CuponResponse, error) {
	cupones, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuponResponse, 0, len(cupones))
	for _, c := range cupones {
		out = append(out, *toCuponResponse(c))
	}
	return out, nil
}

// Create crea un cupón. El código es único.
func (uc *CuponUseCase) Create(in dto.CreateCuponRequest) (*dto.CuponResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.CuponPorcentaje && in.Tipo != entity.CuponMonto {
		return nil, domain.ErrInvalidInput
	}
	if !in.Valor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Cupon{
		ID:              uuid.New().String(),
		Codigo:          codigo,
		Tipo:            in.Tipo,
		Valor:           in.Valor,
		MinimoCompra:    in.MinimoCompra,
		MaximoDescuento: in.MaximoDescuento,
		UsosMaximos:     in.UsosMaximos,
		Usos:            0,
		FechaInicio:     in.FechaInicio,
		FechaFin:        in.FechaFin,
		Activo:          in.Activo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCuponResponse(c), nil
}

// Update actualiza un cupón con semántica de patch parcial. Usos no se toca
// por esta vía: solo lo mueve el checkout.
func (uc *CuponUseCase) Update(id string, in dto.UpdateCuponRequest) (*dto.CuponResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		codigo := strings.TrimSpace(*in.Codigo)
		if codigo == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Codigo = codigo
	}
	if in.Tipo != nil {
		if *in.Tipo != entity.CuponPorcentaje && *in.Tipo != entity.CuponMonto {
			return nil, domain.ErrInvalidInput
		}
		c.Tipo = *in.Tipo
	}
	if in.Valor != nil {
		if !in.Valor.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		c.Valor = *in.Valor
	}
	if in.MinimoCompra != nil {
		c.MinimoCompra = *in.MinimoCompra
	}
	if in.MaximoDescuento != nil {
		c.MaximoDescuento = *in.MaximoDescuento
	}
	if in.UsosMaximos != nil {
		c.UsosMaximos = *in.UsosMaximos
	}
	if in.FechaInicio != nil {
		c.FechaInicio = *in.FechaInicio
	}
	if in.FechaFin != nil {
		c.FechaFin = *in.FechaFin
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCuponResponse(c), nil
}

// Delete elimina un cupón por ID.
func (uc *CuponUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCuponResponse(c *entity.Cupon) *dto.CuponResponse {
	return &dto.CuponResponse{
		ID:              c.ID,
		Codigo:          c.Codigo,
		Tipo:            c.Tipo,
		Valor:           c.Valor,
		MinimoCompra:    c.MinimoCompra,
		MaximoDescuento: c.MaximoDescuento,
		UsosMaximos:     c.UsosMaximos,
		Usos:            c.Usos,
		FechaInicio:     c.FechaInicio,
		FechaFin:        c.FechaFin,
		Activo:          c.Activo,
		CreatedAt:       c.CreatedAt,
	}
}
