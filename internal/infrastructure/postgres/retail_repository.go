package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
)

var _ repository.RetailRepository = (*RetailRepo)(nil)

const retailColumns = `id, company_id, product_id, product_code, product_name, sold_date, quantity,
	actual_sales, applied_at, created_at, updated_at, deleted_at`

// RetailRepo implementación del puerto RetailRepository sobre PostgreSQL (usable con pool o tx).
type RetailRepo struct {
	q Querier
}

// NewRetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRetailRepository(q Querier) *RetailRepo {
	return &RetailRepo{q: q}
}

// SaveAll inserta las ventas en un solo batch.
func (r *RetailRepo) SaveAll(ctx context.Context, retails []*entity.Retail) error {
	if len(retails) == 0 {
		return nil
	}
	query := `
		INSERT INTO retails (id, company_id, product_id, product_code, product_name, sold_date, quantity,
			actual_sales, applied_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11)`

	batch := &pgx.Batch{}
	for _, rt := range retails {
		batch.Queue(query,
			rt.ID, rt.CompanyID, rt.ProductID, rt.ProductCode, rt.ProductName, dateParam(rt.SoldDate),
			rt.Quantity, rt.ActualSales, rt.AppliedAt, rt.CreatedAt, rt.UpdatedAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	for range retails {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert retail: %w", err)
		}
	}
	return nil
}

// ListByCompanyAndSoldDate lista las ventas vigentes (no eliminadas) de un día.
func (r *RetailRepo) ListByCompanyAndSoldDate(ctx context.Context, companyID string, soldDate time.Time) ([]*entity.Retail, error) {
	query := `SELECT ` + retailColumns + `
		FROM retails
		WHERE company_id = $1 AND sold_date = $2::date AND deleted_at IS NULL
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID, dateParam(soldDate))
	if err != nil {
		return nil, fmt.Errorf("list retails by date: %w", err)
	}
	defer rows.Close()

	var list []*entity.Retail
	for rows.Next() {
		rt, err := scanRetail(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// SoftDeleteByCompanyAndSoldDate marca como eliminadas las ventas vigentes de un día.
func (r *RetailRepo) SoftDeleteByCompanyAndSoldDate(ctx context.Context, companyID string, soldDate, now time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE retails SET deleted_at = $3, updated_at = $3
		WHERE company_id = $1 AND sold_date = $2::date AND deleted_at IS NULL`,
		companyID, dateParam(soldDate), now,
	)
	if err != nil {
		return 0, fmt.Errorf("soft delete retails: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List lista ventas vigentes en el rango [From, To] con paginación. Devuelve también el total.
func (r *RetailRepo) List(ctx context.Context, f repository.RetailFilter) ([]*entity.Retail, int, error) {
	query := `SELECT ` + retailColumns + `, count(*) OVER()
		FROM retails
		WHERE company_id = $1 AND deleted_at IS NULL AND sold_date BETWEEN $2::date AND $3::date
		ORDER BY sold_date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, f.CompanyID, dateParam(f.From), dateParam(f.To), f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list retails: %w", err)
	}
	defer rows.Close()

	var (
		list  []*entity.Retail
		total int
	)
	for rows.Next() {
		var rt entity.Retail
		if err := rows.Scan(
			&rt.ID, &rt.CompanyID, &rt.ProductID, &rt.ProductCode, &rt.ProductName, &rt.SoldDate, &rt.Quantity,
			&rt.ActualSales, &rt.AppliedAt, &rt.CreatedAt, &rt.UpdatedAt, &rt.DeletedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan retail: %w", err)
		}
		list = append(list, &rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	// Con offset más allá del final no vuelve ninguna fila que traiga el total.
	if len(list) == 0 && f.Offset > 0 {
		if total, err = r.count(ctx, f); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *RetailRepo) count(ctx context.Context, f repository.RetailFilter) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `
		SELECT count(*) FROM retails
		WHERE company_id = $1 AND deleted_at IS NULL AND sold_date BETWEEN $2::date AND $3::date`,
		f.CompanyID, dateParam(f.From), dateParam(f.To),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count retails: %w", err)
	}
	return total, nil
}

func scanRetail(rows pgx.Rows) (*entity.Retail, error) {
	var rt entity.Retail
	if err := rows.Scan(
		&rt.ID, &rt.CompanyID, &rt.ProductID, &rt.ProductCode, &rt.ProductName, &rt.SoldDate, &rt.Quantity,
		&rt.ActualSales, &rt.AppliedAt, &rt.CreatedAt, &rt.UpdatedAt, &rt.DeletedAt,
	); err != nil {
		return nil, fmt.Errorf("scan retail: %w", err)
	}
	return &rt, nil
}

// dateParam envía solo la fecha calendario, sin depender de la zona del time.Time.
func dateParam(t time.Time) string {
	return t.Format(time.DateOnly)
}
