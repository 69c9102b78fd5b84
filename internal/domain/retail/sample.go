// Package retail contiene las reglas de dominio de ventas al por menor que no
// dependen de infraestructura: la cabecera de la hoja y el juego de datos de ejemplo.
package retail

import "github.com/jhoicas/inventario-retail/internal/domain/entity"

// Cabecera de la hoja de ventas, en orden de columna.
const (
	HeaderProductCode = "Product Code"
	HeaderQuantity    = "Quantity"
	HeaderAppliedAt   = "Applied At"
)

// AppliedAtLayout formato de fecha-hora de la columna "Applied At".
const AppliedAtLayout = "2006-01-02 15:04:05"

// SampleFileName nombre del archivo de ejemplo generado por defecto.
const SampleFileName = "sample_retail.xlsx"

// Headers devuelve la cabecera de la hoja de ejemplo.
func Headers() []string {
	return []string{HeaderProductCode, HeaderQuantity, HeaderAppliedAt}
}

// SampleRows devuelve las tres filas fijas del archivo de ejemplo.
// Cada llamada devuelve un slice nuevo.
func SampleRows() []entity.RetailFixtureRow {
	return []entity.RetailFixtureRow{
		{ProductCode: "P00000LM000D", Quantity: 10, AppliedAt: "2023-12-01 10:00:00"},
		{ProductCode: "P00000WA000B", Quantity: 5, AppliedAt: "2023-12-01 11:00:00"},
		{ProductCode: "P00000IP000A", Quantity: 20, AppliedAt: ""},
	}
}
