// Package excel implementa la lectura y escritura de hojas de ventas al por menor
// sobre excelize.
package excel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/retail"
)

const defaultSheet = "Sheet1"

// RetailWorkbookWriter genera el libro de ventas de ejemplo: una hoja con cabecera
// en la fila 1 y una fila por venta a partir de la fila 2.
type RetailWorkbookWriter struct {
	sheet string
	log   zerolog.Logger
}

// NewRetailWorkbookWriter construye el writer. sheet vacío = "Sheet1".
func NewRetailWorkbookWriter(sheet string, log zerolog.Logger) *RetailWorkbookWriter {
	if sheet == "" {
		sheet = defaultSheet
	}
	return &RetailWorkbookWriter{sheet: sheet, log: log}
}

// Write serializa el libro en w.
func (w *RetailWorkbookWriter) Write(out io.Writer, rows []entity.RetailFixtureRow) error {
	f, err := w.build(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("escribir libro: %w", err)
	}
	return nil
}

// WriteFile guarda el libro en path, sobrescribiendo el archivo si ya existe.
func (w *RetailWorkbookWriter) WriteFile(path string, rows []entity.RetailFixtureRow) error {
	f, err := w.build(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("guardar %s: %w", path, err)
	}
	w.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("libro de ventas guardado")
	return nil
}

func (w *RetailWorkbookWriter) build(rows []entity.RetailFixtureRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if w.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, w.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("renombrar hoja: %w", err)
		}
	}

	if err := w.writeRows(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (w *RetailWorkbookWriter) writeRows(f *excelize.File, rows []entity.RetailFixtureRow) error {
	headers := retail.Headers()
	if err := f.SetSheetRow(w.sheet, "A1", &headers); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("estilo cabecera: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(w.sheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("estilo cabecera: %w", err)
	}
	if err := f.SetColWidth(w.sheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("ancho de columnas: %w", err)
	}

	for i, r := range rows {
		rowNum := i + 2
		if err := w.setCell(f, 1, rowNum, r.ProductCode); err != nil {
			return err
		}
		if err := w.setCell(f, 2, rowNum, r.Quantity); err != nil {
			return err
		}
		// Applied At vacío deja la celda en blanco.
		if r.AppliedAt == "" {
			continue
		}
		if err := w.setCell(f, 3, rowNum, r.AppliedAt); err != nil {
			return err
		}
	}
	return nil
}

func (w *RetailWorkbookWriter) setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("celda %s: %w", cell, err)
	}
	return nil
}
