package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ConfiguracionRepository define el puerto de persistencia para Configuracion.
type ConfiguracionRepository interface {
	// GetByClaves devuelve las filas cuya clave esté en el conjunto dado.
	GetByClaves(claves []string) ([]*entity.Configuracion, error)
	GetByClave(clave string) (*entity.Configuracion, error)
	// Upsert crea o reemplaza el valor de una clave.
	Upsert(clave, valor string) error
}
