package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/feed"
)

func TestConstruir_FeedConItems(t *testing.T) {
	novedades := []*entity.Novedad{
		{
			ID:               "n1",
			Titulo:           "Llegaron los filamentos de seda",
			Contenido:        "Nueva línea PLA seda en 8 colores.",
			FechaPublicacion: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:               "n2",
			Titulo:           "Envíos a todo el país",
			Contenido:        "Sumamos nuevas zonas de entrega.",
			FechaPublicacion: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		},
	}

	out, err := feed.NewRSSBuilder().Construir("Tienda 3D", "https://tienda3d.example", novedades)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<rss version="2.0">`)
	assert.Contains(t, xml, "<title>Tienda 3D</title>")
	assert.Contains(t, xml, "<title>Llegaron los filamentos de seda</title>")
	assert.Contains(t, xml, "https://tienda3d.example/novedades/n2")
	assert.Contains(t, xml, "<pubDate>Sun, 01 Feb 2026 10:00:00 +0000</pubDate>")
}

func TestConstruir_FeedVacio(t *testing.T) {
	out, err := feed.NewRSSBuilder().Construir("Tienda 3D", "https://tienda3d.example", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<channel>")
	assert.NotContains(t, string(out), "<item>")
}
