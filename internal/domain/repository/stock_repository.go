package repository

import (
	"context"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// StockRepository define el puerto de existencias por producto (DIP).
type StockRepository interface {
	// GetForUpdate bloquea la fila de stock del producto; domain.ErrNotFound si no hay registro.
	GetForUpdate(ctx context.Context, productID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
}

// InventoryMovementRepository define el puerto del historial de movimientos (DIP).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
}
