package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// RetailFilter criterios de listado de ventas. Las fechas son inclusivas.
type RetailFilter struct {
	CompanyID string
	From      time.Time
	To        time.Time
	Limit     int
	Offset    int
}

// RetailRepository define el puerto de persistencia para Retail (DIP).
type RetailRepository interface {
	SaveAll(ctx context.Context, retails []*entity.Retail) error
	ListByCompanyAndSoldDate(ctx context.Context, companyID string, soldDate time.Time) ([]*entity.Retail, error)
	SoftDeleteByCompanyAndSoldDate(ctx context.Context, companyID string, soldDate time.Time, now time.Time) (int64, error)
	List(ctx context.Context, f RetailFilter) ([]*entity.Retail, int, error)
}
