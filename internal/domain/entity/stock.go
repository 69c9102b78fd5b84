package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain"
)

// Stock existencias en exhibición de un producto. Las ventas al por menor se descuentan de aquí.
type Stock struct {
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// Decrease descuenta qty; nunca deja el stock en negativo.
func (s *Stock) Decrease(qty decimal.Decimal) error {
	if s.Quantity.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	s.Quantity = s.Quantity.Sub(qty)
	return nil
}

// Increase devuelve qty al stock (p. ej. al reemplazar ventas ya registradas).
func (s *Stock) Increase(qty decimal.Decimal) {
	s.Quantity = s.Quantity.Add(qty)
}
