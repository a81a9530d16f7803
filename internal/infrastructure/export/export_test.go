package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

func sampleProducts() []dto.ProductDetail {
	return []dto.ProductDetail{
		{
			Product: entity.Product{
				ID: 1, Name: "Resma papel", Code: "PAP-001",
				Quantity: 8, MinStock: 15, Price: decimal.NewFromInt(18500),
				Supplier: "Papelería Central", Status: "active",
			},
			CategoryName: "Papelería",
			LowStock:     true,
		},
	}
}

func sampleMovements() []inventory.MovementDetail {
	return []inventory.MovementDetail{
		{
			Movement: entity.Movement{
				ID: 1, Type: entity.MovementSalida, Quantity: 7,
				Reason:    "Entrega área administrativa",
				CreatedAt: time.Date(2025, 1, 13, 14, 20, 0, 0, time.UTC),
			},
			ProductName: "Resma papel",
			UserName:    "María Rodríguez",
		},
	}
}

func TestProductsCSV(t *testing.T) {
	data, err := ProductsCSV(sampleProducts())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, productHeaders, records[0])
	assert.Equal(t, "Resma papel", records[1][1])
	assert.Equal(t, "18500", records[1][6])
}

func TestMovementsCSV(t *testing.T) {
	data, err := MovementsCSV(sampleMovements())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "salida", records[1][3])
	assert.Equal(t, "María Rodríguez", records[1][7])
}

func TestInventoryXLSX(t *testing.T) {
	data, err := InventoryXLSX(sampleProducts(), sampleMovements())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Productos", "Movimientos"}, f.GetSheetList())

	name, err := f.GetCellValue("Productos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Resma papel", name)

	tipo, err := f.GetCellValue("Movimientos", "D2")
	require.NoError(t, err)
	assert.Equal(t, "salida", tipo)
}
