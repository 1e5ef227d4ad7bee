package usecase

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso admin sobre usuarios (el registro/login vive en auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// ListConPedidos devuelve todos los usuarios con su conteo de pedidos,
// más recientes primero.
func (uc *UsuarioUseCase) ListConPedidos() ([]dto.UsuarioConPedidosResponse, error) {
	usuarios, err := uc.repo.ListConPedidos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioConPedidosResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.UsuarioConPedidosResponse{
			UsuarioResponse: *ToUsuarioResponse(&u.Usuario),
			TotalPedidos:    u.TotalPedidos,
		})
	}
	return out, nil
}

// GetByID devuelve un usuario por ID. (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return ToUsuarioResponse(u), nil
}

// Update actualiza un usuario con semántica de patch parcial. El email y el
// password no se tocan por esta vía.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if *in.Rol != entity.RolAdmin && *in.Rol != entity.RolCliente {
			return nil, domain.ErrInvalidInput
		}
		u.Rol = *in.Rol
	}
	if in.EstadoMayorista != nil {
		switch *in.EstadoMayorista {
		case entity.MayoristaNinguno, entity.MayoristaPendiente, entity.MayoristaActivo:
			u.EstadoMayorista = *in.EstadoMayorista
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.UnidadesMesActual != nil {
		u.UnidadesMesActual = *in.UnidadesMesActual
	}
	if in.FechaVencimientoMayorista != nil {
		u.FechaVencimientoMayorista = in.FechaVencimientoMayorista
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Delete elimina un usuario por ID.
func (uc *UsuarioUseCase) Delete(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNotFound
	}
	return uc.repo.Delete(id)
}

// ToUsuarioResponse mapea la entidad al DTO de salida. El hash de password
// queda fuera por construcción.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:                        u.ID,
		Nombre:                    u.Nombre,
		Email:                     u.Email,
		Rol:                       u.Rol,
		EstadoMayorista:           u.EstadoMayorista,
		UnidadesMesActual:         u.UnidadesMesActual,
		FechaVencimientoMayorista: u.FechaVencimientoMayorista,
		CreatedAt:                 u.CreatedAt,
	}
}
