// seed_products genera un script SQL que da de alta en el catálogo los productos
// de una hoja de ventas, con stock suficiente para importar la hoja sin filas omitidas.
//
// Uso: go run ./cmd/seed_products <company_id> [ruta/hoja.xlsx]
// Por defecto lee sample_retail.xlsx en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/900_seed_sample_products.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/retail"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/excel"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_products <company_id> [hoja.xlsx]")
		os.Exit(2)
	}
	companyID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "company_id inválido: %v\n", err)
		os.Exit(2)
	}
	sheetPath := retail.SampleFileName
	if len(os.Args) > 2 {
		sheetPath = os.Args[2]
	}

	f, err := os.Open(sheetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir hoja: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := excel.NewRetailSheetParser(nil, zerolog.Nop()).Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer hoja: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "900_seed_sample_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	n, err := writeSeedSQL(out, companyID, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, n)
}

// writeSeedSQL escribe un INSERT idempotente de producto y de stock por código distinto,
// ordenado por código. El stock inicial es la cantidad total del código en la hoja.
// El id del producto se deriva de (empresa, código), así que re-ejecutar da el mismo script.
func writeSeedSQL(w io.Writer, companyID uuid.UUID, rows []entity.RetailSheetRow) (int, error) {
	names := make(map[string]string)
	totals := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if _, ok := names[r.Code]; !ok || names[r.Code] == "" {
			names[r.Code] = r.ProductName
		}
		totals[r.Code] = totals[r.Code].Add(r.Quantity)
	}
	codes := make([]string, 0, len(names))
	for c := range names {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	var b strings.Builder
	b.WriteString("-- Productos de ejemplo para importar hojas de ventas\n")
	fmt.Fprintf(&b, "-- Empresa: %s\n\n", companyID)
	for _, code := range codes {
		name := names[code]
		if name == "" {
			name = code
		}
		id := uuid.NewSHA1(companyID, []byte(code))
		b.WriteString("INSERT INTO products (id, company_id, sku, name)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s')\n", id, companyID, escapeSQL(code), escapeSQL(name))
		b.WriteString("ON CONFLICT (company_id, sku) DO NOTHING;\n")
		fmt.Fprintf(&b, "INSERT INTO stock (product_id, quantity) VALUES ('%s', %s)\n", id, totals[code])
		b.WriteString("ON CONFLICT (product_id) DO NOTHING;\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return 0, err
	}
	return len(codes), nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
