// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación + quién lo generó      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA ARTÍCULOS: Nombre | Cant | Capacidad | P.Unit | Prov  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA BARRILES: Nombre | Contenido | Litros | Capacidad     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÚLTIMOS MOVIMIENTOS: Fecha | Artículo | Acción | Δ | Actor  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	data *report.InventoryReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("ARTÍCULOS"))
	m.AddRows(articleHeaderRow())
	for _, r := range articleRows(data.Articles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("BARRILES"))
	m.AddRows(barrelHeaderRow())
	for _, r := range barrelRows(data.Barrels) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("ÚLTIMOS MOVIMIENTOS"))
	m.AddRows(logHeaderRow())
	for _, r := range logRows(data.RecentLogs) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + actor (der).
func headerRow(data *report.InventoryReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Almacén", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Por: "+data.GeneratedBy, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// ── Artículos ─────────────────────────────────────────────────────────────────

func articleHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Artículo", 4, align.Left),
		headerCell("Cant.", 2, align.Right),
		headerCell("Capacidad", 2, align.Right),
		headerCell("P. Unit.", 2, align.Right),
		headerCell("Proveedor", 2, align.Left),
	)
}

func articleRows(articles []*entity.Article) []core.Row {
	result := make([]core.Row, 0, len(articles))
	for _, a := range articles {
		result = append(result, row.New(6).Add(
			cell(a.Name, 4, align.Left),
			cell(a.Quantity.StringFixed(2), 2, align.Right),
			cell(a.MaxCapacity.StringFixed(2), 2, align.Right),
			cell("$"+a.UnitPrice.StringFixed(2), 2, align.Right),
			cell(a.Supplier, 2, align.Left),
		))
	}
	return result
}

// ── Barriles ──────────────────────────────────────────────────────────────────

func barrelHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Barril", 4, align.Left),
		headerCell("Contenido", 3, align.Left),
		headerCell("Litros", 2, align.Right),
		headerCell("Capacidad", 3, align.Right),
	)
}

func barrelRows(barrels []*entity.Barrel) []core.Row {
	result := make([]core.Row, 0, len(barrels))
	for _, b := range barrels {
		result = append(result, row.New(6).Add(
			cell(b.Name, 4, align.Left),
			cell(b.Contents, 3, align.Left),
			cell(b.Liters.StringFixed(2), 2, align.Right),
			cell(b.CapacityLiters.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

// ── Movimientos ───────────────────────────────────────────────────────────────

func logHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Artículo", 4, align.Left),
		headerCell("Acción", 1, align.Center),
		headerCell("Δ", 2, align.Right),
		headerCell("Actor", 3, align.Left),
	)
}

func logRows(logs []*entity.StockLog) []core.Row {
	result := make([]core.Row, 0, len(logs))
	for _, l := range logs {
		result = append(result, row.New(6).Add(
			cell(l.CreatedAt.Format("02/01 15:04"), 2, align.Left),
			cell(l.ArticleName, 4, align.Left),
			cell(l.Action, 1, align.Center),
			cell(l.Delta.StringFixed(2), 2, align.Right),
			cell(l.ActorLabel, 3, align.Left),
		))
	}
	return result
}
