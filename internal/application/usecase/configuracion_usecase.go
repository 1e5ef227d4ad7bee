package usecase

import (
	"encoding/json"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// clavesPublicas es la lista blanca de claves que expone el endpoint público.
// Cualquier otra fila de configuración queda fuera de la respuesta.
var clavesPublicas = []string{
	entity.ClaveModoProximamente,
	entity.ClaveTextoProximamente,
	entity.ClaveNombreTienda,
	entity.ClaveWhatsapp,
	entity.ClaveInstagram,
	entity.ClaveEmail,
}

// ConfiguracionUseCase casos de uso de la configuración clave/valor.
type ConfiguracionUseCase struct {
	repo repository.ConfiguracionRepository
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.ConfiguracionRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo}
}

// GetPublica arma la respuesta pública: defaults tipados, sobreescritos por
// las filas presentes. Los valores se decodifican como JSON de forma
// oportunista; si no son JSON válido se usan como texto crudo.
func (uc *ConfiguracionUseCase) GetPublica() (*dto.ConfigPublicaResponse, error) {
	filas, err := uc.repo.GetByClaves(clavesPublicas)
	if err != nil {
		return nil, err
	}
	out := &dto.ConfigPublicaResponse{
		ModoProximamente:  false,
		TextoProximamente: "",
		NombreTienda:      "",
		Whatsapp:          "",
		Instagram:         "",
		Email:             "",
	}
	for _, fila := range filas {
		switch fila.Clave {
		case entity.ClaveModoProximamente:
			out.ModoProximamente = decodeBool(fila.Valor)
		case entity.ClaveTextoProximamente:
			out.TextoProximamente = decodeString(fila.Valor)
		case entity.ClaveNombreTienda:
			out.NombreTienda = decodeString(fila.Valor)
		case entity.ClaveWhatsapp:
			out.Whatsapp = decodeString(fila.Valor)
		case entity.ClaveInstagram:
			out.Instagram = decodeString(fila.Valor)
		case entity.ClaveEmail:
			out.Email = decodeString(fila.Valor)
		}
	}
	return out, nil
}

// NombreTienda devuelve el nombre configurado de la tienda ("" si no hay fila).
func (uc *ConfiguracionUseCase) NombreTienda() (string, error) {
	fila, err := uc.repo.GetByClave(entity.ClaveNombreTienda)
	if err != nil {
		return "", err
	}
	if fila == nil {
		return "", nil
	}
	return decodeString(fila.Valor), nil
}

// Actualizar upsertea cada par clave/valor recibido.
func (uc *ConfiguracionUseCase) Actualizar(in dto.UpdateConfigRequest) error {
	for clave, valor := range in.Valores {
		if err := uc.repo.Upsert(clave, valor); err != nil {
			return err
		}
	}
	return nil
}

// decodeBool interpreta el valor guardado como booleano: primero JSON
// ("true"/"false"), después el texto crudo "true".
func decodeBool(valor string) bool {
	var b bool
	if err := json.Unmarshal([]byte(valor), &b); err == nil {
		return b
	}
	return valor == "true"
}

// decodeString interpreta el valor guardado: si es un string JSON se
// desenvuelve, si no se devuelve el texto crudo tal cual.
func decodeString(valor string) string {
	var s string
	if err := json.Unmarshal([]byte(valor), &s); err == nil {
		return s
	}
	return valor
}
