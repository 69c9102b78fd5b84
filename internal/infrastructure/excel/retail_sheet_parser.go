package excel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/retail"
)

// Alias aceptados por columna (comparación sin mayúsculas y sin espacios extremos).
var (
	codeHeaders      = []string{"product code", "code"}
	nameHeaders      = []string{"product name", "name"}
	quantityHeaders  = []string{"quantity", "qty"}
	salesHeaders     = []string{"actual sales", "sales"}
	appliedAtHeaders = []string{"applied at"}
)

// Formatos aceptados para "Applied At" además del número de serie de Excel.
var appliedAtLayouts = []string{
	retail.AppliedAtLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RetailSheetParser lee hojas de ventas al por menor. Solo se usa la primera hoja
// y la fila 1 debe ser la cabecera.
type RetailSheetParser struct {
	loc *time.Location
	log zerolog.Logger
}

// NewRetailSheetParser construye el parser. loc nil = UTC.
func NewRetailSheetParser(loc *time.Location, log zerolog.Logger) *RetailSheetParser {
	if loc == nil {
		loc = time.UTC
	}
	return &RetailSheetParser{loc: loc, log: log}
}

type columns struct {
	code, name, quantity, sales, appliedAt int
}

// Parse devuelve las filas válidas de la hoja.
// Se omiten filas sin código y filas con cantidad no positiva o ilegible.
func (p *RetailSheetParser) Parse(r io.Reader) ([]entity.RetailSheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrInvalidSheet
	}
	// Texto formateado para código y nombre; valor almacenado para números y fechas.
	display, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetParse, err)
	}
	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetParse, err)
	}
	if len(display) == 0 {
		return nil, domain.ErrInvalidSheet
	}

	cols, err := locateColumns(display[0])
	if err != nil {
		return nil, err
	}

	out := make([]entity.RetailSheetRow, 0, len(display)-1)
	for i := 1; i < len(display); i++ {
		row := display[i]
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		rowIndex := i + 1

		code := cellAt(row, cols.code)
		if code == "" {
			continue
		}

		qtyText := cellAt(rawRow, cols.quantity)
		quantity, err := parseQuantity(qtyText)
		if err != nil {
			p.log.Warn().Int("row", rowIndex).Str("value", qtyText).Err(err).
				Msg("cantidad ilegible, fila omitida")
			continue
		}
		if !quantity.IsPositive() {
			continue
		}

		out = append(out, entity.RetailSheetRow{
			RowIndex:    rowIndex,
			Code:        code,
			ProductName: cellAt(row, cols.name),
			Quantity:    quantity,
			ActualSales: p.parseSales(rowIndex, cellAt(rawRow, cols.sales)),
			AppliedAt:   p.parseAppliedAt(rowIndex, cellAt(rawRow, cols.appliedAt)),
		})
	}
	return out, nil
}

func locateColumns(header []string) (columns, error) {
	cols := columns{code: -1, name: -1, quantity: -1, sales: -1, appliedAt: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.code < 0 && contains(codeHeaders, key):
			cols.code = i
		case cols.name < 0 && contains(nameHeaders, key):
			cols.name = i
		case cols.quantity < 0 && contains(quantityHeaders, key):
			cols.quantity = i
		case cols.sales < 0 && contains(salesHeaders, key):
			cols.sales = i
		case cols.appliedAt < 0 && contains(appliedAtHeaders, key):
			cols.appliedAt = i
		}
	}
	if cols.code < 0 || cols.quantity < 0 {
		return cols, fmt.Errorf("%w: se requieren %q y %q", domain.ErrInvalidSheet,
			retail.HeaderProductCode, retail.HeaderQuantity)
	}
	return cols, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// cellAt tolera filas cortas o nil: GetRows recorta las celdas vacías del final.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseQuantity acepta separador de miles ("1,000") y decimales. Vacío = 0.
func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseSales redondea al entero más cercano; vacío, ilegible o fuera de rango (INTEGER) = nil.
func (p *RetailSheetParser) parseSales(rowIndex int, s string) *int {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.log.Warn().Int("row", rowIndex).Str("value", s).Msg("venta real ilegible")
		return nil
	}
	rounded := math.Round(f)
	if math.IsNaN(rounded) || rounded < math.MinInt32 || rounded > math.MaxInt32 {
		p.log.Warn().Int("row", rowIndex).Str("value", s).Msg("venta real fuera de rango, se ignora")
		return nil
	}
	n := int(rounded)
	if rounded != f {
		p.log.Warn().Int("row", rowIndex).Float64("original", f).Int("rounded", n).
			Msg("venta real con decimales, se redondea")
	}
	return &n
}

func (p *RetailSheetParser) parseAppliedAt(rowIndex int, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseAppliedAt(s, p.loc)
	if err != nil {
		p.log.Warn().Int("row", rowIndex).Str("value", s).Msg("fecha de aplicación ilegible, se ignora")
		return nil
	}
	return &t
}

var errUnknownDateFormat = errors.New("formato de fecha desconocido")

func parseAppliedAt(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range appliedAtLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	// Celda con formato numérico: número de serie de Excel.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}
	return time.Time{}, errUnknownDateFormat
}
