// Package sheets implementa el exportador hacia Google Sheets usado por la
// sincronización bajo demanda del panel admin.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Exporter escribe hojas completas en un documento de Google Sheets.
// Cada exportación limpia la hoja destino y la reescribe desde A1.
type Exporter struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewExporter construye el exportador con credenciales de service account.
func NewExporter(ctx context.Context, credentialsFile, spreadsheetID string) (*Exporter, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet ID vacío")
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &Exporter{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Exportar reemplaza el contenido de la hoja con encabezados + filas.
// Un fallo en cualquier paso aborta la exportación completa; no hay
// reporte de éxito parcial ni reintentos.
func (e *Exporter) Exportar(ctx context.Context, hoja string, encabezados []string, filas [][]any) error {
	_, err := e.svc.Spreadsheets.Values.
		Clear(e.spreadsheetID, hoja, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: limpiar hoja %q: %w", hoja, err)
	}

	values := make([][]interface{}, 0, len(filas)+1)
	header := make([]interface{}, len(encabezados))
	for i, h := range encabezados {
		header[i] = h
	}
	values = append(values, header)
	for _, f := range filas {
		values = append(values, f)
	}

	vr := &sheets.ValueRange{Values: values}
	_, err = e.svc.Spreadsheets.Values.
		Update(e.spreadsheetID, hoja+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: escribir hoja %q: %w", hoja, err)
	}
	return nil
}
