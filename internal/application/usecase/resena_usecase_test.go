package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeResenaRepo repositorio en memoria con la misma semántica de orden que
// el adaptador real: orden <= 0 en Create se reemplaza por max+1.
type fakeResenaRepo struct {
	resenas []*entity.Resena
}

func (f *fakeResenaRepo) Create(r *entity.Resena) error {
	if r.Orden <= 0 {
		max := 0
		for _, e := range f.resenas {
			if e.Orden > max {
				max = e.Orden
			}
		}
		r.Orden = max + 1
	}
	f.resenas = append(f.resenas, r)
	return nil
}

func (f *fakeResenaRepo) GetByID(id string) (*entity.Resena, error) {
	for _, r := range f.resenas {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeResenaRepo) ListActivas() ([]*entity.Resena, error) {
	var out []*entity.Resena
	for _, r := range f.resenas {
		if r.Activa {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResenaRepo) ListAll() ([]*entity.Resena, error) { return f.resenas, nil }

func (f *fakeResenaRepo) MaxOrden() (int, error) {
	max := 0
	for _, r := range f.resenas {
		if r.Orden > max {
			max = r.Orden
		}
	}
	return max, nil
}

func (f *fakeResenaRepo) Update(r *entity.Resena) error { return nil }
func (f *fakeResenaRepo) Delete(id string) error        { return nil }

func TestResenaSubmitNaceInactiva(t *testing.T) {
	repo := &fakeResenaRepo{}
	uc := NewResenaUseCase(repo)

	out, err := uc.Submit(dto.SubmitResenaRequest{Nombre: "Ana", Texto: "Excelente", Rating: 5})
	require.NoError(t, err)
	assert.False(t, out.Activa, "una reseña pública debe nacer pendiente de moderación")
	assert.Equal(t, 1, out.Orden)
}

func TestResenaSubmitRatingInvalido(t *testing.T) {
	uc := NewResenaUseCase(&fakeResenaRepo{})

	_, err := uc.Submit(dto.SubmitResenaRequest{Nombre: "Ana", Texto: "x", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Submit(dto.SubmitResenaRequest{Nombre: "Ana", Texto: "x", Rating: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResenaCreateAdminOrdenIncremental(t *testing.T) {
	repo := &fakeResenaRepo{}
	uc := NewResenaUseCase(repo)

	primera, err := uc.Create(dto.CreateResenaRequest{Nombre: "Ana", Texto: "a", Rating: 4, Activa: true})
	require.NoError(t, err)
	segunda, err := uc.Create(dto.CreateResenaRequest{Nombre: "Beto", Texto: "b", Rating: 5, Activa: true})
	require.NoError(t, err)

	assert.Equal(t, 1, primera.Orden)
	assert.Equal(t, 2, segunda.Orden)
	assert.True(t, segunda.Activa, "el alta admin respeta el flag activa")
}

func TestResenaListPublicasSoloActivas(t *testing.T) {
	repo := &fakeResenaRepo{}
	uc := NewResenaUseCase(repo)

	_, err := uc.Create(dto.CreateResenaRequest{Nombre: "Ana", Texto: "a", Rating: 4, Activa: true})
	require.NoError(t, err)
	_, err = uc.Submit(dto.SubmitResenaRequest{Nombre: "Beto", Texto: "b", Rating: 3})
	require.NoError(t, err)

	publicas, err := uc.ListPublicas()
	require.NoError(t, err)
	require.Len(t, publicas, 1)
	assert.Equal(t, "Ana", publicas[0].Nombre)

	todas, err := uc.ListAll()
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestResenaUpdateNoExiste(t *testing.T) {
	uc := NewResenaUseCase(&fakeResenaRepo{})

	out, err := uc.Update("no-existe", dto.UpdateResenaRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
