// Package feed construye el feed RSS 2.0 de novedades de la tienda.
package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RSSBuilder arma el documento XML del feed. Implementa usecase.FeedBuilder.
type RSSBuilder struct{}

// NewRSSBuilder construye el builder.
func NewRSSBuilder() *RSSBuilder {
	return &RSSBuilder{}
}

// Construir genera el XML RSS 2.0 con las novedades dadas.
// baseURL es la raíz pública de la tienda (para los enlaces de cada item).
func (b *RSSBuilder) Construir(nombreTienda, baseURL string, novedades []*entity.Novedad) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(nombreTienda)
	channel.CreateElement("link").SetText(baseURL)
	channel.CreateElement("description").SetText("Novedades de " + nombreTienda)
	channel.CreateElement("lastBuildDate").SetText(time.Now().UTC().Format(time.RFC1123Z))

	for _, n := range novedades {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(n.Titulo)
		item.CreateElement("link").SetText(baseURL + "/novedades/" + n.ID)
		item.CreateElement("guid").SetText(n.ID)
		item.CreateElement("description").SetText(n.Contenido)
		item.CreateElement("pubDate").SetText(n.FechaPublicacion.UTC().Format(time.RFC1123Z))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar RSS: %w", err)
	}
	return out, nil
}
