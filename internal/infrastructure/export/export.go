// Package export serializa el inventario y los movimientos a formatos de
// intercambio (CSV y XLSX) para descarga.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
)

const (
	productsSheet  = "Productos"
	movementsSheet = "Movimientos"
)

var productHeaders = []string{"ID", "Nombre", "Código", "Categoría", "Cantidad", "Stock mínimo", "Precio", "Proveedor", "Estado"}

var movementHeaders = []string{"ID", "Fecha", "Producto", "Tipo", "Cantidad", "Motivo", "Notas", "Usuario"}

// ProductsCSV serializa el catálogo a CSV con encabezados en español.
func ProductsCSV(products []dto.ProductDetail) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(productHeaders); err != nil {
		return nil, err
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Code,
			p.CategoryName,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStock),
			p.Price.String(),
			p.Supplier,
			p.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// MovementsCSV serializa el historial de movimientos a CSV.
func MovementsCSV(movements []inventory.MovementDetail) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(movementHeaders); err != nil {
		return nil, err
	}
	for _, m := range movements {
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.ProductName,
			m.Type,
			strconv.Itoa(m.Quantity),
			m.Reason,
			m.Notes,
			m.UserName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// InventoryXLSX genera un libro XLSX con dos hojas: catálogo de productos y
// movimientos.
func InventoryXLSX(products []dto.ProductDetail, movements []inventory.MovementDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// La hoja por defecto se renombra a la de productos.
	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(movementsSheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, productsSheet, 1, toAny(productHeaders)); err != nil {
		return nil, err
	}
	for i, p := range products {
		row := []any{p.ID, p.Name, p.Code, p.CategoryName, p.Quantity, p.MinStock, p.Price.String(), p.Supplier, p.Status}
		if err := writeRow(f, productsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, movementsSheet, 1, toAny(movementHeaders)); err != nil {
		return nil, err
	}
	for i, m := range movements {
		row := []any{m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.ProductName, m.Type, m.Quantity, m.Reason, m.Notes, m.UserName}
		if err := writeRow(f, movementsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
