// Cliente de terminal para pedidos institucionales: consulta de stock
// multi-bodega, agenda de entregas, composición y envío de pedidos, registro
// de visitas de campo y carga masiva de proveedores.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	appdelivery "github.com/tu-usuario/pedidos-pro/internal/application/delivery"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	appinventory "github.com/tu-usuario/pedidos-pro/internal/application/inventory"
	apporder "github.com/tu-usuario/pedidos-pro/internal/application/order"
	appsupplier "github.com/tu-usuario/pedidos-pro/internal/application/supplier"
	appvisit "github.com/tu-usuario/pedidos-pro/internal/application/visit"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/infrastructure/api"
	"github.com/tu-usuario/pedidos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/pedidos-pro/pkg/config"
	"github.com/tu-usuario/pedidos-pro/pkg/jwt"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: pedidos <comando> [flags]

Comandos:
  stock       stock agregado por bodega de un SKU
  deliveries  todas las entregas programadas de una fecha
  order       componer y enviar un pedido
  visit       registrar una visita de campo (con adjuntos opcionales)
  suppliers   carga masiva de proveedores desde un archivo JSON`)
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("comando requerido")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	// Fallo rápido: no iniciar un recorrido de varias páginas con sesión vencida.
	if cfg.API.Token != "" {
		if claims, err := jwt.Inspect(cfg.API.Token); err != nil {
			log.Warn().Err(err).Msg("token de sesión no inspeccionable; el servidor decidirá")
		} else if claims.Expired(time.Now()) {
			return fmt.Errorf("la sesión expiró el %s; inicia sesión de nuevo", claims.ExpiresAt.Format(time.RFC3339))
		}
	}

	client := api.NewClient(cfg.API, log)
	ctx := context.Background()

	switch args[0] {
	case "stock":
		return runStock(ctx, client, log, args[1:])
	case "deliveries":
		return runDeliveries(ctx, client, cfg, log, args[1:])
	case "order":
		return runOrder(ctx, client, cfg, log, args[1:])
	case "visit":
		return runVisit(ctx, client, log, args[1:])
	case "suppliers":
		return runSuppliers(ctx, client, log, args[1:])
	default:
		usage()
		return fmt.Errorf("comando desconocido %q", args[0])
	}
}

func runStock(ctx context.Context, client *api.Client, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("stock", flag.ContinueOnError)
	sku := fs.String("sku", "", "SKU del producto (puede contener espacios)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sku == "" {
		return fmt.Errorf("-sku es requerido")
	}

	uc := appinventory.NewStockLookupUseCase(client, log)
	out, err := uc.TotalBySKU(ctx, *sku)
	if err != nil {
		return err
	}

	fmt.Printf("SKU %s — stock total: %s\n", out.ProductID, out.Total.String())
	for _, w := range out.Warehouses {
		marca := ""
		if !w.Known {
			marca = " (no catalogada)"
		}
		fmt.Printf("  %-30s %-20s %s%s\n", w.WarehouseName, w.Location, w.Stock.String(), marca)
	}
	return nil
}

func runDeliveries(ctx context.Context, client *api.Client, cfg *config.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("deliveries", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "fecha (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	uc := appdelivery.NewScheduleUseCase(client, cfg.API.PageSize, log)
	all, _, err := uc.Refresh(ctx, *date)
	if err != nil {
		return err
	}

	fmt.Printf("%d entregas programadas para %s\n", len(all), *date)
	for _, d := range all {
		fmt.Printf("  %-12s %-10s %s\n", d.ID, d.Status, d.Address)
	}
	return nil
}

// orderItems flag repetible -item "id,nombre,precio,cantidad".
type orderItems []string

func (o *orderItems) String() string     { return strings.Join(*o, "; ") }
func (o *orderItems) Set(v string) error { *o = append(*o, v); return nil }

func runOrder(ctx context.Context, client *api.Client, cfg *config.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	institution := fs.String("institution", "", "id del cliente institucional")
	pdfPath := fs.String("pdf", "", "ruta para guardar el resumen PDF antes de enviar")
	dryRun := fs.Bool("dry-run", false, "componer y mostrar totales sin enviar")
	var items orderItems
	fs.Var(&items, "item", `línea del pedido: "sku,nombre,precio,cantidad" (repetible)`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *institution == "" {
		return fmt.Errorf("-institution es requerido")
	}
	if len(items) == 0 {
		return fmt.Errorf("al menos un -item es requerido")
	}

	stockUC := appinventory.NewStockLookupUseCase(client, log)
	uc := apporder.NewComposeOrderUseCase(stockUC, client, *institution, cfg.Tax.Rate, log)

	for _, raw := range items {
		parts := strings.SplitN(raw, ",", 4)
		if len(parts) != 4 {
			return fmt.Errorf("item %q inválido; formato sku,nombre,precio,cantidad", raw)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return fmt.Errorf("precio inválido en %q: %w", raw, err)
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
		if err != nil {
			return fmt.Errorf("cantidad inválida en %q: %w", raw, err)
		}
		p := entity.Product{
			ID:    strings.TrimSpace(parts[0]),
			SKU:   strings.TrimSpace(parts[0]),
			Name:  strings.TrimSpace(parts[1]),
			Price: price,
		}
		if err := uc.AddProduct(ctx, p, qty); err != nil {
			return err
		}
	}

	totals := uc.Totals()
	fmt.Printf("Subtotal: %s  IVA: %s  Total: %s  Unidades: %s\n",
		totals.Subtotal.String(), totals.Tax.String(), totals.Total.String(), totals.UnitCount.String())

	if *pdfPath != "" {
		gen := pdf.NewOrderSummaryGenerator()
		body, err := gen.GenerateOrderSummary(pdf.OrderSummaryInput{
			InstitutionName: *institution,
			InstitutionID:   *institution,
			Lines:           uc.Lines(),
			Totals:          totals,
			GeneratedAt:     time.Now(),
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(*pdfPath, body, 0o644); err != nil {
			return fmt.Errorf("guardar PDF: %w", err)
		}
		fmt.Println("resumen PDF guardado en", *pdfPath)
	}

	if *dryRun {
		return nil
	}

	out, err := uc.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("pedido %s creado (estado %s)\n", out.ID, out.Status)
	return nil
}

// attachFlags flag repetible -attach ruta[:mime].
type attachFlags []string

func (a *attachFlags) String() string     { return strings.Join(*a, "; ") }
func (a *attachFlags) Set(v string) error { *a = append(*a, v); return nil }

func runVisit(ctx context.Context, client *api.Client, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("visit", flag.ContinueOnError)
	institution := fs.String("institution", "", "id del cliente institucional")
	purpose := fs.String("purpose", "", "propósito de la visita")
	notes := fs.String("notes", "", "notas de la visita")
	var attach attachFlags
	fs.Var(&attach, "attach", "ruta de un adjunto (repetible)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	attachments := make([]entity.Attachment, 0, len(attach))
	for _, path := range attach {
		attachments = append(attachments, entity.Attachment{
			URI:      path,
			Name:     filepath.Base(path),
			MimeType: mimeFromPath(path),
		})
	}

	uc := appvisit.NewRegisterVisitUseCase(client, log)
	out, err := uc.Register(ctx, entity.Visit{
		InstitutionID: *institution,
		Purpose:       *purpose,
		Notes:         *notes,
		VisitedAt:     time.Now(),
		Attachments:   attachments,
	})
	if err != nil {
		return err
	}
	fmt.Printf("visita %s registrada con %d adjuntos\n", out.ID, out.Attachments)
	return nil
}

func mimeFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".pdf"):
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func runSuppliers(ctx context.Context, client *api.Client, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("suppliers", flag.ContinueOnError)
	file := fs.String("file", "", "archivo JSON con la lista de proveedores")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file es requerido")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	var records []dto.SupplierRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parsear %s: %w", *file, err)
	}
	suppliers := make([]entity.Supplier, 0, len(records))
	for _, r := range records {
		suppliers = append(suppliers, r.ToEntity())
	}

	uc := appsupplier.NewBulkUploadUseCase(client, log)
	out, err := uc.Upload(ctx, suppliers)
	if err != nil {
		return err
	}
	fmt.Printf("proveedores creados: %d, fallidos: %d\n", out.Created, out.Failed)
	for _, e := range out.Errors {
		fmt.Println("  -", e)
	}
	return nil
}
