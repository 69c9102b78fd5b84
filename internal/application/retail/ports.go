package retail

import (
	"context"
	"io"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
)

// WorkbookWriter serializa las filas del archivo de ejemplo en un libro de Excel.
type WorkbookWriter interface {
	Write(w io.Writer, rows []entity.RetailFixtureRow) error
	WriteFile(path string, rows []entity.RetailFixtureRow) error
}

// SheetParser lee una hoja de ventas subida por el usuario.
type SheetParser interface {
	Parse(r io.Reader) ([]entity.RetailSheetRow, error)
}

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn retorna error se hace rollback.
type TxRunner interface {
	RunRetail(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		movRepo repository.InventoryMovementRepository,
		retailRepo repository.RetailRepository,
	) error) error
}
