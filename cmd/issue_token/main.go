// issue_token emite un JWT para subir y consultar hojas de ventas de una empresa.
//
// Uso: go run ./cmd/issue_token <company_id> [user_id]
// Usa JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la configuración.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-retail/pkg/config"
	"github.com/jhoicas/inventario-retail/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: issue_token <company_id> [user_id]")
		os.Exit(2)
	}
	companyID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "company_id inválido: %v\n", err)
		os.Exit(2)
	}
	userID := "cli"
	if len(os.Args) > 2 {
		userID = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, userID, companyID.String(), cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
