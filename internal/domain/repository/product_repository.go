package repository

import (
	"context"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// ProductRepository define el puerto de consulta de productos (DIP).
// GetByCompanyAndSKU devuelve (nil, nil) si no existe.
type ProductRepository interface {
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error)
}
