package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/pkg/slug"
)

func TestMake_Basico(t *testing.T) {
	assert.Equal(t, "filamentos", slug.Make("Filamentos"))
	assert.Equal(t, "pla-negro", slug.Make("PLA Negro"))
}

func TestMake_Acentos(t *testing.T) {
	assert.Equal(t, "resinas-estandar", slug.Make("Resinas Estándar"))
	assert.Equal(t, "pequeno-nandu", slug.Make("Pequeño Ñandú"))
}

func TestMake_SimbolosYEspacios(t *testing.T) {
	assert.Equal(t, "pla-negro-1kg", slug.Make("  PLA / Negro -- 1kg!  "))
	assert.Equal(t, "", slug.Make("¡¿!?"))
}
