package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type fakeConfigRepo struct {
	filas map[string]string
}

func (f *fakeConfigRepo) GetByClaves(claves []string) ([]*entity.Configuracion, error) {
	var out []*entity.Configuracion
	for _, clave := range claves {
		if valor, ok := f.filas[clave]; ok {
			out = append(out, &entity.Configuracion{Clave: clave, Valor: valor})
		}
	}
	return out, nil
}

func (f *fakeConfigRepo) GetByClave(clave string) (*entity.Configuracion, error) {
	if valor, ok := f.filas[clave]; ok {
		return &entity.Configuracion{Clave: clave, Valor: valor}, nil
	}
	return nil, nil
}

func (f *fakeConfigRepo) Upsert(clave, valor string) error {
	f.filas[clave] = valor
	return nil
}

func TestConfigPublicaDefaults(t *testing.T) {
	uc := NewConfiguracionUseCase(&fakeConfigRepo{filas: map[string]string{}})

	out, err := uc.GetPublica()
	require.NoError(t, err)
	assert.False(t, out.ModoProximamente)
	assert.Empty(t, out.NombreTienda)
}

func TestConfigPublicaDecodeOportunista(t *testing.T) {
	repo := &fakeConfigRepo{filas: map[string]string{
		entity.ClaveModoProximamente:  "true",               // JSON booleano
		entity.ClaveNombreTienda:      `"Tienda 3D"`,        // string JSON: se desenvuelve
		entity.ClaveWhatsapp:          "+54 9 11 5555-5555", // no es JSON: texto crudo
		entity.ClaveTextoProximamente: "{json roto",         // JSON inválido: texto crudo
	}}
	uc := NewConfiguracionUseCase(repo)

	out, err := uc.GetPublica()
	require.NoError(t, err)
	assert.True(t, out.ModoProximamente)
	assert.Equal(t, "Tienda 3D", out.NombreTienda)
	assert.Equal(t, "+54 9 11 5555-5555", out.Whatsapp)
	assert.Equal(t, "{json roto", out.TextoProximamente)
}

func TestConfigPublicaIgnoraClavesFueraDeListaBlanca(t *testing.T) {
	repo := &fakeConfigRepo{filas: map[string]string{
		entity.ClaveNombreTienda:    "Tienda",
		entity.ClaveMaintenanceMode: "true",
	}}
	uc := NewConfiguracionUseCase(repo)

	out, err := uc.GetPublica()
	require.NoError(t, err)
	// MAINTENANCE_MODE es operacional: nunca viaja en la respuesta pública.
	assert.Equal(t, "Tienda", out.NombreTienda)
}

func TestConfigActualizarUpsertea(t *testing.T) {
	repo := &fakeConfigRepo{filas: map[string]string{}}
	uc := NewConfiguracionUseCase(repo)

	err := uc.Actualizar(dto.UpdateConfigRequest{Valores: map[string]string{
		entity.ClaveNombreTienda: "Nueva",
		entity.ClaveInstagram:    "@nueva",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Nueva", repo.filas[entity.ClaveNombreTienda])
	assert.Equal(t, "@nueva", repo.filas[entity.ClaveInstagram])
}
