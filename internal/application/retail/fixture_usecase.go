// Package retail casos de uso de ventas al por menor: archivo de ejemplo,
// vista previa, importación y listado.
package retail

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	domainretail "github.com/jhoicas/inventario-retail/internal/domain/retail"
)

// FixtureUseCase genera el archivo de ejemplo sample_retail.xlsx.
type FixtureUseCase struct {
	writer WorkbookWriter
	log    zerolog.Logger
}

// NewFixtureUseCase construye el caso de uso.
func NewFixtureUseCase(writer WorkbookWriter, log zerolog.Logger) *FixtureUseCase {
	return &FixtureUseCase{writer: writer, log: log}
}

// Generate arma la tabla fija y la escribe en path. Devuelve el número de filas de datos.
func (uc *FixtureUseCase) Generate(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	rows := domainretail.SampleRows()
	if err := uc.writer.WriteFile(path, rows); err != nil {
		return 0, fmt.Errorf("generar archivo de ejemplo: %w", err)
	}
	uc.log.Info().Str("path", path).Int("rows", len(rows)).Msg("archivo de ejemplo generado")
	return len(rows), nil
}

// WriteTo escribe el archivo de ejemplo en w (descarga HTTP).
func (uc *FixtureUseCase) WriteTo(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := uc.writer.Write(w, domainretail.SampleRows()); err != nil {
		return fmt.Errorf("escribir archivo de ejemplo: %w", err)
	}
	return nil
}
