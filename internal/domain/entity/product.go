package entity

import "time"

// Product producto del catálogo. En este servicio solo se consulta por SKU para
// asociar las ventas de la hoja con el catálogo.
type Product struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa; coincide con "Product Code" de la hoja
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
