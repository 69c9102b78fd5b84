package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // devolución al stock
	MovementTypeOUT = "OUT" // venta al por menor
)

// InventoryMovement rastro de cada cambio de stock hecho por una importación.
// TransactionID es el id de la venta (Retail) que lo originó.
type InventoryMovement struct {
	ID            string
	TransactionID string
	ProductID     string
	Type          string
	Quantity      decimal.Decimal // positivo entrada, negativo salida
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
