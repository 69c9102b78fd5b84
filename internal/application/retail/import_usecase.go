package retail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
)

// ImportResult resultado de importar una hoja de ventas.
type ImportResult struct {
	ProcessedCount int
	// Skipped "<código> (<nombre>)" de cada fila omitida, con el motivo cuando no es
	// un producto desconocido.
	Skipped []string
}

// ImportUseCase registra las ventas de una hoja para la fecha de hoy y las descuenta del stock.
// Las ventas ya registradas para la misma empresa y fecha se eliminan lógicamente,
// su cantidad vuelve al stock y se reemplazan por las de la hoja.
type ImportUseCase struct {
	parser SheetParser
	tx     TxRunner
	loc    *time.Location
	now    func() time.Time
	log    zerolog.Logger
}

// NewImportUseCase construye el caso de uso. loc determina el día de venta (sold_date).
func NewImportUseCase(parser SheetParser, tx TxRunner, loc *time.Location, log zerolog.Logger) *ImportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ImportUseCase{parser: parser, tx: tx, loc: loc, now: time.Now, log: log}
}

// WithClock reemplaza el reloj (tests).
func (uc *ImportUseCase) WithClock(now func() time.Time) *ImportUseCase {
	uc.now = now
	return uc
}

// Import lee la hoja y registra las ventas en una sola transacción.
// userID queda como autor de los movimientos de inventario.
func (uc *ImportUseCase) Import(ctx context.Context, companyID, userID string, r io.Reader) (*ImportResult, error) {
	companyID, err := normalizeCompanyID(companyID)
	if err != nil {
		return nil, err
	}

	// La hoja se lee antes de abrir la transacción: un archivo inválido no toca la base.
	rows, err := uc.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)
	soldDate := truncateDay(now)
	result := &ImportResult{Skipped: []string{}}

	err = uc.tx.RunRetail(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		movRepo repository.InventoryMovementRepository,
		retailRepo repository.RetailRepository,
	) error {
		if err := uc.replaceExisting(ctx, stockRepo, movRepo, retailRepo, companyID, userID, soldDate, now); err != nil {
			return err
		}

		retails := make([]*entity.Retail, 0, len(rows))
		for _, row := range rows {
			product, err := productRepo.GetByCompanyAndSKU(ctx, companyID, row.Code)
			if err != nil {
				return fmt.Errorf("buscar producto %s: %w", row.Code, err)
			}
			if product == nil {
				result.Skipped = append(result.Skipped, fmt.Sprintf("%s (%s)", row.Code, row.ProductName))
				uc.log.Warn().Int("row", row.RowIndex).Str("code", row.Code).Str("product_name", row.ProductName).
					Msg("producto no encontrado, fila omitida")
				continue
			}

			stock, err := stockRepo.GetForUpdate(ctx, product.ID)
			if errors.Is(err, domain.ErrNotFound) {
				result.Skipped = append(result.Skipped, fmt.Sprintf("%s (%s) - sin registro de inventario", row.Code, row.ProductName))
				uc.log.Warn().Str("product_id", product.ID).Str("code", row.Code).
					Msg("producto sin registro de inventario, fila omitida")
				continue
			}
			if err != nil {
				return fmt.Errorf("consultar stock %s: %w", row.Code, err)
			}
			available := stock.Quantity
			if err := stock.Decrease(row.Quantity); err != nil {
				result.Skipped = append(result.Skipped, fmt.Sprintf("%s (%s) - stock insuficiente (requerido: %s, actual: %s)",
					row.Code, row.ProductName, row.Quantity, available))
				uc.log.Warn().Str("code", row.Code).Str("required", row.Quantity.String()).
					Str("available", available.String()).Msg("stock insuficiente, fila omitida")
				continue
			}
			if err := stockRepo.Upsert(ctx, stock); err != nil {
				return fmt.Errorf("actualizar stock %s: %w", row.Code, err)
			}

			retail := &entity.Retail{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				ProductID:   product.ID,
				ProductCode: row.Code,
				ProductName: row.ProductName,
				SoldDate:    soldDate,
				Quantity:    row.Quantity,
				ActualSales: row.ActualSales,
				AppliedAt:   row.AppliedAt,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := movRepo.Create(ctx, &entity.InventoryMovement{
				TransactionID: retail.ID,
				ProductID:     product.ID,
				Type:          entity.MovementTypeOUT,
				Quantity:      row.Quantity.Neg(),
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     userID,
			}); err != nil {
				return fmt.Errorf("registrar movimiento %s: %w", row.Code, err)
			}
			retails = append(retails, retail)
		}

		if len(retails) > 0 {
			if err := retailRepo.SaveAll(ctx, retails); err != nil {
				return fmt.Errorf("guardar ventas: %w", err)
			}
		}
		result.ProcessedCount = len(retails)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("company_id", companyID).Str("user_id", userID).Str("sold_date", soldDate.Format(time.DateOnly)).
		Int("processed", result.ProcessedCount).Int("skipped", len(result.Skipped)).
		Msg("hoja de ventas importada")
	return result, nil
}

// replaceExisting elimina lógicamente las ventas vigentes del día y devuelve su cantidad al stock.
func (uc *ImportUseCase) replaceExisting(
	ctx context.Context,
	stockRepo repository.StockRepository,
	movRepo repository.InventoryMovementRepository,
	retailRepo repository.RetailRepository,
	companyID, userID string,
	soldDate, now time.Time,
) error {
	existing, err := retailRepo.ListByCompanyAndSoldDate(ctx, companyID, soldDate)
	if err != nil {
		return fmt.Errorf("consultar ventas del día: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}
	uc.log.Warn().Str("company_id", companyID).Str("sold_date", soldDate.Format(time.DateOnly)).
		Int("count", len(existing)).Msg("ya existen ventas para la fecha; se reemplazan")

	for _, r := range existing {
		uc.log.Debug().Str("retail_id", r.ID).Str("code", r.ProductCode).
			Str("quantity", r.Quantity.String()).Msg("venta eliminada lógicamente")

		stock, err := stockRepo.GetForUpdate(ctx, r.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn().Str("product_id", r.ProductID).Msg("sin registro de inventario, no se devuelve stock")
			continue
		}
		if err != nil {
			return fmt.Errorf("consultar stock %s: %w", r.ProductCode, err)
		}
		stock.Increase(r.Quantity)
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return fmt.Errorf("devolver stock %s: %w", r.ProductCode, err)
		}
		if err := movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: r.ID,
			ProductID:     r.ProductID,
			Type:          entity.MovementTypeIN,
			Quantity:      r.Quantity,
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}); err != nil {
			return fmt.Errorf("registrar devolución %s: %w", r.ProductCode, err)
		}
	}

	if _, err := retailRepo.SoftDeleteByCompanyAndSoldDate(ctx, companyID, soldDate, now); err != nil {
		return fmt.Errorf("eliminar ventas del día: %w", err)
	}
	return nil
}

// normalizeCompanyID exige un UUID de empresa.
func normalizeCompanyID(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	return id.String(), nil
}

// truncateDay conserva solo la fecha, en la zona de t.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
