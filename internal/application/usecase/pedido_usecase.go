package usecase

import (
	"context"
	"encoding/json"
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

// PedidoUseCase casos de uso de pedidos: checkout transaccional, listados y PDF.
type PedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	usuarioRepo  repository.UsuarioRepository
	tx           CheckoutTxRunner
	pdf          PedidoPDFGenerator
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
	tx CheckoutTxRunner,
	pdf PedidoPDFGenerator,
) *PedidoUseCase {
	return &PedidoUseCase{
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		usuarioRepo:  usuarioRepo,
		tx:           tx,
		pdf:          pdf,
	}
}

// Checkout crea un pedido para el usuario. Los precios se resuelven al momento
// de la compra (tarifa mayorista si el usuario la tiene vigente). El alta del
// pedido, el consumo del cupón y el acumulado mensual del usuario se confirman
// en una sola transacción.
func (uc *PedidoUseCase) Checkout(ctx context.Context, usuarioID string, in dto.CheckoutRequest) (*dto.PedidoResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}

	now := time.Now()
	mayorista := usuario.EsMayoristaVigente(now)

	subtotal := decimal.Zero
	unidades := 0
	items := make([]entity.PedidoItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Cantidad < 1 {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(it.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil || !producto.Activo {
			return nil, domain.ErrInvalidInput
		}
		precio := producto.PrecioPara(mayorista)
		items = append(items, entity.PedidoItem{
			ProductoID: producto.ID,
			Nombre:     producto.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     precio,
		})
		subtotal = subtotal.Add(precio.Mul(decimal.NewFromInt(int64(it.Cantidad))))
		unidades += it.Cantidad
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	var pedido *entity.Pedido
	err = uc.tx.RunCheckout(ctx, func(
		pedidoRepo repository.PedidoRepository,
		cuponRepo repository.CuponRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		descuento := decimal.Zero
		cuponCodigo := ""
		if codigo := strings.TrimSpace(in.Cupon); codigo != "" {
			c, err := cuponRepo.GetByCodigo(codigo)
			if err != nil {
				return err
			}
			if c == nil {
				return cupondom.ErrInactivo
			}
			descuento, err = cupondom.Calcular(c, subtotal, now)
			if err != nil {
				return err
			}
			cuponCodigo = c.Codigo
			if err := cuponRepo.IncrementarUsos(c.ID); err != nil {
				return err
			}
		}

		pedido = &entity.Pedido{
			ID:          uuid.New().String(),
			UsuarioID:   usuarioID,
			Items:       itemsJSON,
			Subtotal:    subtotal,
			Descuento:   descuento,
			Total:       subtotal.Sub(descuento),
			CuponCodigo: cuponCodigo,
			Estado:      entity.PedidoPendiente,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}

		// El acumulado mensual se lee y actualiza dentro de la misma tx.
		u, err := usuarioRepo.GetByID(usuarioID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUsuarioNotFound
		}
		u.UnidadesMesActual += unidades
		u.UpdatedAt = now
		return usuarioRepo.Update(u)
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido)
}

// ListByUsuario devuelve los pedidos del usuario, más recientes primero.
func (uc *PedidoUseCase) ListByUsuario(usuarioID string) ([]dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(pedidos)
}

// ListAll devuelve todos los pedidos con paginación (admin).
func (uc *PedidoUseCase) ListAll(limit, offset int) ([]dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(pedidos)
}

// GenerarPDF arma el comprobante PDF de un pedido. Un cliente solo puede pedir
// los suyos; un admin cualquiera.
func (uc *PedidoUseCase) GenerarPDF(pedidoID, solicitanteID, rol, nombreTienda string) ([]byte, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin && pedido.UsuarioID != solicitanteID {
		return nil, domain.ErrForbidden
	}
	usuario, err := uc.usuarioRepo.GetByID(pedido.UsuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return uc.pdf.Generar(pedido, usuario, nombreTienda)
}

func toPedidoResponse(p *entity.Pedido) (*dto.PedidoResponse, error) {
	var items []entity.PedidoItem
	if len(p.Items) > 0 {
		if err := json.Unmarshal(p.Items, &items); err != nil {
			return nil, err
		}
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		UsuarioID:   p.UsuarioID,
		Items:       items,
		Subtotal:    p.Subtotal,
		Descuento:   p.Descuento,
		Total:       p.Total,
		CuponCodigo: p.CuponCodigo,
		Estado:      p.Estado,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func toPedidoResponses(pedidos []*entity.Pedido) ([]dto.PedidoResponse, error) {
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		r, err := toPedidoResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}
