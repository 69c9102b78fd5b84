package entity

// RetailFixtureRow fila del archivo de ejemplo de ventas (sample_retail.xlsx).
// AppliedAt es texto "2006-01-02 15:04:05" o vacío.
type RetailFixtureRow struct {
	ProductCode string
	Quantity    int
	AppliedAt   string
}
