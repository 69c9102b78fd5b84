package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Retail venta al por menor registrada desde una hoja de ventas.
// ProductCode y ProductName se guardan tal como venían en la hoja (valor al momento de la venta).
type Retail struct {
	ID          string
	CompanyID   string
	ProductID   string
	ProductCode string
	ProductName string
	SoldDate    time.Time // solo fecha; la hora se ignora
	Quantity    decimal.Decimal
	ActualSales *int
	AppliedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Delete marca la venta como eliminada (soft delete).
func (r *Retail) Delete(now time.Time) {
	r.DeletedAt = &now
	r.UpdatedAt = now
}

// IsDeleted indica si la venta fue eliminada lógicamente.
func (r *Retail) IsDeleted() bool {
	return r.DeletedAt != nil
}
