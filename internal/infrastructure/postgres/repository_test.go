package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/postgres"
)

// ── Querier en memoria ───────────────────────────────────────────────────────

type noRows struct{}

func (noRows) Close()                                       {}
func (noRows) Err() error                                   { return nil }
func (noRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (noRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (noRows) Next() bool                                   { return false }
func (noRows) Scan(...any) error                            { return nil }
func (noRows) Values() ([]any, error)                       { return nil, nil }
func (noRows) RawValues() [][]byte                          { return nil }
func (noRows) Conn() *pgx.Conn                              { return nil }

// intRow devuelve n en el primer destino, o err.
type intRow struct {
	n   int
	err error
}

func (r intRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.n
	return nil
}

type fakeQuerier struct {
	row     pgx.Row
	queries []string
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.queries = append(q.queries, sql)
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	return noRows{}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.queries = append(q.queries, sql)
	return q.row
}

func (q *fakeQuerier) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

// ── RetailRepo ───────────────────────────────────────────────────────────────

func retailFilter(offset int) repository.RetailFilter {
	day := time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC)
	return repository.RetailFilter{
		CompanyID: "00000000-0000-0000-0000-000000000002",
		From:      day.AddDate(0, 0, -30),
		To:        day,
		Limit:     20,
		Offset:    offset,
	}
}

func TestRetailList_OffsetFueraDeRangoConservaTotal(t *testing.T) {
	q := &fakeQuerier{row: intRow{n: 7}}

	list, total, err := postgres.NewRetailRepository(q).List(context.Background(), retailFilter(40))
	require.NoError(t, err)

	assert.Empty(t, list)
	assert.Equal(t, 7, total)
	require.Len(t, q.queries, 2)
	assert.Contains(t, q.queries[1], "count(*)")
}

func TestRetailList_SinOffsetNoCuentaAparte(t *testing.T) {
	q := &fakeQuerier{row: intRow{n: 7}}

	_, total, err := postgres.NewRetailRepository(q).List(context.Background(), retailFilter(0))
	require.NoError(t, err)

	assert.Zero(t, total)
	assert.Len(t, q.queries, 1)
}

// ── StockRepo ────────────────────────────────────────────────────────────────

func TestStockGetForUpdate_SinRegistro(t *testing.T) {
	q := &fakeQuerier{row: intRow{err: pgx.ErrNoRows}}

	_, err := postgres.NewStockRepository(q).GetForUpdate(context.Background(), "prod-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, q.queries, 1)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(q.queries[0]), "FOR UPDATE"))
}
