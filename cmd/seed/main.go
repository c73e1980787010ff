// seed carga un catálogo de productos (CSV o JSON) en el almacenamiento configurado,
// con su stock en la sucursal indicada.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv] [branchID]
// Por defecto lee catalogo.csv del directorio actual y usa la sucursal inicial.
// Los CSV en Windows-1252 (exportados desde hojas de cálculo) se convierten a UTF-8.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/zenith-pos/internal/application/inventory"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/bootstrap"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/importexport"
	"github.com/jhoicas/zenith-pos/pkg/config"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

func main() {
	path := "catalogo.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	branchID := state.SeedBranchID
	if len(os.Args) > 2 {
		branchID = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir catálogo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	st, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != ports.FormatJSON {
		format = ports.FormatCSV
	}
	uc := inventory.NewInventoryUseCase(st.Runner, importexport.Codec{})
	actor := ports.Actor{UserID: state.SeedAdminUserID, Name: "seed", BranchID: branchID}
	out, err := uc.Import(ctx, actor, f, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Importados: %d productos (omitidos %d) en la sucursal %s\n", out.Imported, out.Skipped, branchID)
}
