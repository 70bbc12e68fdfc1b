package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	domainorder "github.com/tu-usuario/pedidos-pro/internal/domain/order"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

// ComposeOrderUseCase compone un pedido sobre los topes de stock del
// agregador. El carrito vive solo durante la composición: se descarta al
// enviar con éxito o al cancelar.
//
// El tope usado en cada fusión es el vigente al momento de esa fusión; no se
// revalida contra un feed de stock en vivo (el servidor es el árbitro final
// de la sobreventa al recibir el pedido).
type ComposeOrderUseCase struct {
	stock         StockProvider
	api           OrderAPI
	cart          *domainorder.Cart
	taxRate       decimal.Decimal
	institutionID string
	log           *logger.Logger

	// pending conserva la petición ya construida (incluida su clave de
	// idempotencia) cuando un envío falla, para reintentar con el mismo cuerpo.
	pending *dto.CreateOrderRequest
}

// NewComposeOrderUseCase construye el caso de uso con un carrito vacío.
func NewComposeOrderUseCase(stock StockProvider, api OrderAPI, institutionID string, taxRate decimal.Decimal, log *logger.Logger) *ComposeOrderUseCase {
	return &ComposeOrderUseCase{
		stock:         stock,
		api:           api,
		cart:          domainorder.NewCart(),
		taxRate:       taxRate,
		institutionID: institutionID,
		log:           log.Component("order"),
	}
}

// AddProduct consulta el tope de stock del producto y agrega (o fusiona) la
// línea. Devuelve *domain.StockError si la cantidad combinada supera el tope.
func (uc *ComposeOrderUseCase) AddProduct(ctx context.Context, product entity.Product, quantity decimal.Decimal) error {
	available, err := uc.stock.AvailableStock(ctx, product.SKU)
	if err != nil {
		return err
	}
	if err := uc.cart.AddOrMerge(product.ID, product.Name, product.Price, quantity, available); err != nil {
		return err
	}
	uc.pending = nil // el carrito cambió; una petición pendiente quedó obsoleta
	uc.log.Debug().Str("producto", product.ID).Str("cantidad", quantity.String()).Msg("línea agregada")
	return nil
}

// RemoveProduct quita la línea del producto. Idempotente.
func (uc *ComposeOrderUseCase) RemoveProduct(productID string) {
	uc.cart.RemoveLine(productID)
	uc.pending = nil
}

// Lines devuelve las líneas actuales del carrito.
func (uc *ComposeOrderUseCase) Lines() []entity.CartLine {
	return uc.cart.Lines()
}

// Totals calcula los totales del carrito con la tasa de impuesto configurada.
func (uc *ComposeOrderUseCase) Totals() entity.CartTotals {
	return uc.cart.Totals(uc.taxRate)
}

// Submit envía el pedido. La petición (con su clave de idempotencia) se
// construye completa antes de llamar a la red; si el envío falla, el siguiente
// Submit reutiliza exactamente la misma petición. Con éxito, el carrito se
// descarta.
func (uc *ComposeOrderUseCase) Submit(ctx context.Context) (*dto.OrderResponse, error) {
	if uc.cart.Len() == 0 {
		return nil, &domain.ValidationError{Field: "items", Message: "el pedido no tiene líneas"}
	}

	if uc.pending == nil {
		req := uc.buildRequest()
		uc.pending = &req
	}

	out, err := uc.api.CreateOrder(ctx, *uc.pending)
	if err != nil {
		uc.log.Warn().Err(err).Str("clave", uc.pending.IdempotencyKey).Msg("envío de pedido falló; reintentable con el mismo cuerpo")
		return nil, err
	}

	uc.cart = domainorder.NewCart()
	uc.pending = nil
	return out, nil
}

// Cancel descarta el carrito y cualquier petición pendiente.
func (uc *ComposeOrderUseCase) Cancel() {
	uc.cart = domainorder.NewCart()
	uc.pending = nil
}

func (uc *ComposeOrderUseCase) buildRequest() dto.CreateOrderRequest {
	totals := uc.cart.Totals(uc.taxRate)
	lines := uc.cart.Lines()
	items := make([]dto.OrderItemDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.OrderItemDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return dto.CreateOrderRequest{
		InstitutionID:  uc.institutionID,
		IdempotencyKey: uuid.New().String(),
		Items:          items,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
	}
}
