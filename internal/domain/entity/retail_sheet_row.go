package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RetailSheetRow fila leída de una hoja de ventas subida por el usuario.
// RowIndex es el número de fila en la hoja (la cabecera es la fila 1).
type RetailSheetRow struct {
	RowIndex    int
	Code        string
	ProductName string
	Quantity    decimal.Decimal
	ActualSales *int
	AppliedAt   *time.Time
}
