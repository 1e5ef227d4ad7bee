package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Mailer es el puerto de correo saliente. Un Mailer nil significa envío
// deshabilitado (los casos de uso lo toleran).
type Mailer interface {
	Enviar(para, asunto, cuerpo string) error
}

// PedidoPDFGenerator es el puerto de generación del comprobante PDF de un pedido.
type PedidoPDFGenerator interface {
	Generar(pedido *entity.Pedido, usuario *entity.Usuario, nombreTienda string) ([]byte, error)
}

// FeedBuilder es el puerto de construcción del feed RSS de novedades.
type FeedBuilder interface {
	Construir(nombreTienda, baseURL string, novedades []*entity.Novedad) ([]byte, error)
}

// CheckoutTxRunner ejecuta el callback del checkout dentro de una transacción:
// los repos que recibe fn operan sobre la misma tx y el conjunto se confirma
// o revierte de forma atómica.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		cuponRepo repository.CuponRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}
