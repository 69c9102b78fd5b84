package excel_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/excel"
)

// buildSheet arma un libro en memoria con las filas dadas a partir de A1.
func buildSheet(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParse_ReglasDeOmision(t *testing.T) {
	buf := buildSheet(t,
		[]any{"No", "Product Code", "Product Name", "Quantity", "Actual Sales"},
		[]any{1, "P001", "Jabón", "3", "4500"},
		[]any{2, "", "Sin código", "1", "100"},
		[]any{3, "P003", "Cero", "0", "0"},
		[]any{4, "P004", "Negativo", "-2", "0"},
		[]any{5, "P005", "Ilegible", "abc", "0"},
		[]any{6, "P006", "Miles", "1,000", "1,200,000"},
		[]any{7, "P007", "", "2.5", "1500.6"},
	)

	p := excel.NewRetailSheetParser(time.UTC, zerolog.Nop())
	rows, err := p.Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].RowIndex)
	assert.Equal(t, "P001", rows[0].Code)
	assert.Equal(t, "Jabón", rows[0].ProductName)
	assert.Equal(t, "3", rows[0].Quantity.String())
	require.NotNil(t, rows[0].ActualSales)
	assert.Equal(t, 4500, *rows[0].ActualSales)

	assert.Equal(t, 7, rows[1].RowIndex)
	assert.Equal(t, "1000", rows[1].Quantity.String())
	require.NotNil(t, rows[1].ActualSales)
	assert.Equal(t, 1200000, *rows[1].ActualSales)

	assert.Equal(t, 8, rows[2].RowIndex)
	assert.Empty(t, rows[2].ProductName, "nombre vacío permitido")
	assert.Equal(t, "2.5", rows[2].Quantity.String())
	require.NotNil(t, rows[2].ActualSales)
	assert.Equal(t, 1501, *rows[2].ActualSales, "venta con decimales se redondea")
}

func TestParse_CabeceraSinDistinguirMayusculas(t *testing.T) {
	buf := buildSheet(t,
		[]any{"  QTY ", "code", "applied at"},
		[]any{"4", "X1", "2023-12-01 10:00:00"},
	)

	loc := time.FixedZone("KST", 9*3600)
	rows, err := excel.NewRetailSheetParser(loc, zerolog.Nop()).Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0].Code)
	assert.Nil(t, rows[0].ActualSales)
	require.NotNil(t, rows[0].AppliedAt)
	assert.True(t, time.Date(2023, 12, 1, 10, 0, 0, 0, loc).Equal(*rows[0].AppliedAt))
}

func TestParse_FechaIlegibleSeIgnora(t *testing.T) {
	buf := buildSheet(t,
		[]any{"Product Code", "Quantity", "Applied At"},
		[]any{"X1", "1", "ayer por la tarde"},
	)

	rows, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].AppliedAt)
}

func TestParse_SinColumnaCantidad(t *testing.T) {
	buf := buildSheet(t,
		[]any{"Product Code", "Applied At"},
		[]any{"X1", "2023-12-01 10:00:00"},
	)

	_, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidSheet)
}

func TestParse_HojaVacia(t *testing.T) {
	buf := buildSheet(t)

	_, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidSheet)
}

func TestParse_ArchivoNoExcel(t *testing.T) {
	_, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(strings.NewReader("no soy un xlsx"))
	assert.ErrorIs(t, err, domain.ErrSheetParse)
}

func TestParse_CeldasNumericasConFormato(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Product Code", "Quantity", "Applied At"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"P1", 1500, time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"P2", 2, time.Date(2023, 12, 1, 18, 30, 15, 0, time.UTC)}))

	numFmt := `#,##0 "ea"`
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B3", style))

	shown, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	require.Equal(t, "1,500 ea", shown, "la celda se muestra con formato")

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := excel.NewRetailSheetParser(time.UTC, zerolog.Nop()).Parse(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1500", rows[0].Quantity.String())
	require.NotNil(t, rows[0].AppliedAt)
	assert.Equal(t, "2023-12-01 10:00:00", rows[0].AppliedAt.Format("2006-01-02 15:04:05"))

	assert.Equal(t, "2", rows[1].Quantity.String())
	require.NotNil(t, rows[1].AppliedAt)
	assert.Equal(t, "2023-12-01 18:30:15", rows[1].AppliedAt.Format("2006-01-02 15:04:05"))
}

func TestParse_VentaFueraDeRangoSeIgnora(t *testing.T) {
	buf := buildSheet(t,
		[]any{"Product Code", "Quantity", "Actual Sales"},
		[]any{"X1", "1", "1e30"},
		[]any{"X2", "1", "NaN"},
		[]any{"X3", "1", "-3000000000"},
		[]any{"X4", "1", "2147483647"},
	)

	rows, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Nil(t, rows[0].ActualSales)
	assert.Nil(t, rows[1].ActualSales)
	assert.Nil(t, rows[2].ActualSales)
	require.NotNil(t, rows[3].ActualSales)
	assert.Equal(t, 2147483647, *rows[3].ActualSales)
}
