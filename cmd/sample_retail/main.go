// sample_retail genera el archivo de ejemplo de ventas al por menor (sample_retail.xlsx)
// usado para probar la carga de hojas de ventas.
//
// Uso: go run ./cmd/sample_retail [ruta/salida.xlsx]
// Por defecto escribe FIXTURE_OUTPUT_PATH (sample_retail.xlsx en el directorio actual).
// Si el archivo existe se sobrescribe.
package main

import (
	"context"
	"fmt"
	"os"

	appretail "github.com/jhoicas/inventario-retail/internal/application/retail"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-retail/pkg/config"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	outPath := cfg.Fixture.OutputPath
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	// Los logs van a stderr; stdout queda para el mensaje de confirmación.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	writer := excel.NewRetailWorkbookWriter(cfg.Fixture.SheetName, log.Component("excel"))
	uc := appretail.NewFixtureUseCase(writer, log.Component("fixture"))

	if _, err := uc.Generate(context.Background(), outPath); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("no se pudo generar el archivo de ejemplo")
	}

	fmt.Printf("Sample Excel file '%s' created successfully.\n", outPath)
}
