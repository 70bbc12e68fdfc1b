package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/application/order"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

type fakeStock struct{ available decimal.Decimal }

func (f *fakeStock) AvailableStock(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.available, nil
}

type fakeOrderAPI struct {
	requests []dto.CreateOrderRequest
	fail     int // número de envíos que deben fallar antes de aceptar
}

var errEnvio = errors.New("timeout del backend")

func (f *fakeOrderAPI) CreateOrder(_ context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	f.requests = append(f.requests, req)
	if f.fail > 0 {
		f.fail--
		return nil, errEnvio
	}
	return &dto.OrderResponse{ID: "o1", InstitutionID: req.InstitutionID, Status: "CREADO", Total: req.Total}, nil
}

func newUC(stock *fakeStock, api *fakeOrderAPI) *order.ComposeOrderUseCase {
	return order.NewComposeOrderUseCase(stock, api, "inst1", decimal.NewFromFloat(0.19),
		logger.New(logger.Config{Env: "production", Level: "error"}))
}

func producto(id string, precio int64) entity.Product {
	return entity.Product{ID: id, SKU: "SKU-" + id, Name: "Producto " + id, Price: decimal.NewFromInt(precio)}
}

// TestAddProduct_ValidaContraElTope agrega hasta el tope y rechaza lo que lo supera.
func TestAddProduct_ValidaContraElTope(t *testing.T) {
	uc := newUC(&fakeStock{available: decimal.NewFromInt(5)}, &fakeOrderAPI{})
	ctx := context.Background()
	p := producto("p1", 100)

	require.NoError(t, uc.AddProduct(ctx, p, decimal.NewFromInt(2)))
	require.NoError(t, uc.AddProduct(ctx, p, decimal.NewFromInt(3)))

	err := uc.AddProduct(ctx, p, decimal.NewFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	lines := uc.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(decimal.NewFromInt(5)), "las dos fusiones válidas deben conservarse")
}

// TestSubmit_ReintentaConElMismoCuerpo tras un fallo de envío, el reintento
// manda exactamente la misma petición, incluida la clave de idempotencia.
func TestSubmit_ReintentaConElMismoCuerpo(t *testing.T) {
	api := &fakeOrderAPI{fail: 1}
	uc := newUC(&fakeStock{available: decimal.NewFromInt(10)}, api)
	ctx := context.Background()

	require.NoError(t, uc.AddProduct(ctx, producto("p1", 250), decimal.NewFromInt(4)))

	_, err := uc.Submit(ctx)
	require.ErrorIs(t, err, errEnvio)

	out, err := uc.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "o1", out.ID)

	require.Len(t, api.requests, 2)
	assert.Equal(t, api.requests[0].IdempotencyKey, api.requests[1].IdempotencyKey,
		"el reintento debe reutilizar la clave de idempotencia")
	assert.Equal(t, api.requests[0], api.requests[1], "el cuerpo del reintento debe ser idéntico")

	assert.Empty(t, uc.Lines(), "el carrito se descarta tras el envío exitoso")
}

// TestSubmit_CarritoVacioEsValidationError no se toca la red con carrito vacío.
func TestSubmit_CarritoVacioEsValidationError(t *testing.T) {
	api := &fakeOrderAPI{}
	uc := newUC(&fakeStock{available: decimal.NewFromInt(10)}, api)

	_, err := uc.Submit(context.Background())

	require.Error(t, err)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, api.requests, "la validación local debe ocurrir antes de cualquier llamada de red")
}

// TestSubmit_TotalesCoherentes subtotal, impuesto y total viajan coherentes.
func TestSubmit_TotalesCoherentes(t *testing.T) {
	api := &fakeOrderAPI{}
	uc := newUC(&fakeStock{available: decimal.NewFromInt(100)}, api)
	ctx := context.Background()

	require.NoError(t, uc.AddProduct(ctx, producto("p1", 100), decimal.NewFromInt(2)))
	require.NoError(t, uc.AddProduct(ctx, producto("p2", 50), decimal.NewFromInt(4)))

	tot := uc.Totals()
	_, err := uc.Submit(ctx)
	require.NoError(t, err)

	req := api.requests[0]
	assert.True(t, req.Subtotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, req.Tax.Equal(tot.Tax))
	assert.True(t, req.Total.Equal(req.Subtotal.Add(req.Tax)))
	require.Len(t, req.Items, 2)
	assert.True(t, req.Items[0].Subtotal.Equal(decimal.NewFromInt(200)))
}

// TestCancel_DescartaCarritoYPendiente cancelar limpia todo el estado local.
func TestCancel_DescartaCarritoYPendiente(t *testing.T) {
	uc := newUC(&fakeStock{available: decimal.NewFromInt(10)}, &fakeOrderAPI{fail: 1})
	ctx := context.Background()

	require.NoError(t, uc.AddProduct(ctx, producto("p1", 100), decimal.NewFromInt(1)))
	_, _ = uc.Submit(ctx) // falla y deja pendiente

	uc.Cancel()
	assert.Empty(t, uc.Lines())
}
