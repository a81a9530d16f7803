// Package pdf genera el reporte imprimible de movimientos de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cant | Motivo | Usuario    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de movimientos listados                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntrada = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorSalida  = &props.Color{Red: 239, Green: 68, Blue: 68}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MovementsPDFGenerator genera el reporte de movimientos usando Maroto v2.
type MovementsPDFGenerator struct{}

// NewMovementsPDFGenerator construye el generador.
func NewMovementsPDFGenerator() *MovementsPDFGenerator { return &MovementsPDFGenerator{} }

// Generate produce el PDF con los movimientos listados y devuelve sus bytes.
func (g *MovementsPDFGenerator) Generate(title string, movements []inventory.MovementDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, mv := range movements {
		m.AddRows(detailRow(mv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(3, "Producto"),
		header(1, "Tipo"),
		header(1, "Cant."),
		header(3, "Motivo"),
		header(2, "Usuario"),
	)
}

func detailRow(mv inventory.MovementDetail) core.Row {
	tipoColor := colorEntrada
	if mv.Type == entity.MovementSalida {
		tipoColor = colorSalida
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(2, mv.CreatedAt.Format("02/01/2006 15:04")),
		cell(3, mv.ProductName),
		col.New(1).Add(text.New(mv.Type, props.Text{Size: 8, Style: fontstyle.Bold, Color: tipoColor})),
		col.New(1).Add(text.New(strconv.Itoa(mv.Quantity), props.Text{Size: 8, Align: align.Right})),
		cell(3, mv.Reason),
		cell(2, mv.UserName),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de movimientos: %d", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
