package cupon_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/cupon"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var ahora = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func cuponBase() *entity.Cupon {
	return &entity.Cupon{
		Codigo:      "PROMO10",
		Tipo:        entity.CuponPorcentaje,
		Valor:       decimal.NewFromInt(10),
		FechaInicio: ahora.AddDate(0, -1, 0),
		FechaFin:    ahora.AddDate(0, 1, 0),
		Activo:      true,
	}
}

func TestCalcular_PorcentajeSimple(t *testing.T) {
	c := cuponBase()
	d, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(100)), "10%% de 1000 debe ser 100, fue %s", d)
}

func TestCalcular_PorcentajeConTope(t *testing.T) {
	c := cuponBase()
	c.MaximoDescuento = decimal.NewFromInt(50)
	d, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(50)), "el tope debe limitar el descuento, fue %s", d)
}

func TestCalcular_MontoFijoNoSuperaTotal(t *testing.T) {
	c := cuponBase()
	c.Tipo = entity.CuponMonto
	c.Valor = decimal.NewFromInt(500)
	d, err := cupon.Calcular(c, decimal.NewFromInt(300), ahora)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(300)), "el descuento no puede superar el total, fue %s", d)
}

func TestCalcular_Inactivo(t *testing.T) {
	c := cuponBase()
	c.Activo = false
	_, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	assert.ErrorIs(t, err, cupon.ErrInactivo)
}

func TestCalcular_FueraDeVigencia(t *testing.T) {
	c := cuponBase()
	_, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora.AddDate(0, 2, 0))
	assert.ErrorIs(t, err, cupon.ErrNoVigente)

	_, err = cupon.Calcular(c, decimal.NewFromInt(1000), ahora.AddDate(0, -2, 0))
	assert.ErrorIs(t, err, cupon.ErrNoVigente)
}

func TestCalcular_Agotado(t *testing.T) {
	c := cuponBase()
	c.UsosMaximos = 5
	c.Usos = 5
	_, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	assert.ErrorIs(t, err, cupon.ErrAgotado)
}

func TestCalcular_MinimoNoAlcanzado(t *testing.T) {
	c := cuponBase()
	c.MinimoCompra = decimal.NewFromInt(2000)
	_, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	assert.ErrorIs(t, err, cupon.ErrMinimoNoAlcanzado)
}

func TestCalcular_TipoDesconocido(t *testing.T) {
	c := cuponBase()
	c.Tipo = "2x1"
	_, err := cupon.Calcular(c, decimal.NewFromInt(1000), ahora)
	assert.ErrorIs(t, err, cupon.ErrTipoDesconocido)
}
