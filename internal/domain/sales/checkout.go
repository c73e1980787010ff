// Package sales contiene el comando de cobro del punto de venta.
package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/pricing"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// CartItem línea del carrito. Price y Cost son opcionales: si vienen en cero se toman
// del catálogo al momento del cobro.
type CartItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Cost      decimal.Decimal
}

// CheckoutCommand registra una venta en una sola transición: valida, descuenta stock,
// acredita al cliente, numera, acumula efectivo en la caja abierta y audita.
type CheckoutCommand struct {
	BranchID           string
	CustomerID         string
	Items              []CartItem
	DiscountPercentage decimal.Decimal
	PaymentMethod      entity.SalePaymentMethod
	Comments           string
	Actor              string
	At                 time.Time

	// Resultado.
	Sale entity.Sale
}

func (c *CheckoutCommand) Name() string { return "sales.checkout" }

// Apply implementa state.Command.
func (c *CheckoutCommand) Apply(st *state.State) error {
	if len(c.Items) == 0 {
		return domain.ErrEmptyCart
	}
	if !c.PaymentMethod.Valid() {
		return fmt.Errorf("forma de pago %q: %w", c.PaymentMethod, domain.ErrInvalidInput)
	}
	if st.BranchIndex(c.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}

	items := make([]entity.SaleItem, 0, len(c.Items))
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("cantidad %d para %q: %w", it.Quantity, it.ProductID, domain.ErrInvalidInput)
		}
		idx := st.ProductIndex(it.ProductID)
		if idx < 0 {
			return fmt.Errorf("producto %q: %w", it.ProductID, domain.ErrNotFound)
		}
		p := st.Products[idx]
		price, cost := it.Price, it.Cost
		if price.IsZero() {
			price = p.Price
		}
		if cost.IsZero() {
			cost = p.Cost
		}
		if price.IsNegative() || cost.IsNegative() {
			return fmt.Errorf("precio o costo negativo para %q: %w", p.Name, domain.ErrInvalidInput)
		}
		items = append(items, entity.SaleItem{
			ProductID: p.ID, Name: p.Name, Quantity: it.Quantity, Price: price, Cost: cost,
		})
		lines = append(lines, pricing.Line{UnitPrice: price, Quantity: it.Quantity})
	}

	discount := pricing.ClampDiscount(c.DiscountPercentage)
	totals := pricing.Compute(lines, discount, st.Settings.TaxRate, st.Settings.PricesIncludeTax)

	ci := st.CustomerIndex(c.CustomerID)
	if ci < 0 {
		ci = st.CustomerIndex(entity.WalkInCustomerID)
	}
	var customer entity.Customer
	if ci >= 0 {
		customer = st.Customers[ci]
	} else {
		customer = entity.Customer{ID: entity.WalkInCustomerID, Name: "Cliente General"}
	}

	if c.PaymentMethod == entity.SaleCredit {
		if ci < 0 || totals.Total.GreaterThan(customer.AvailableCredit()) {
			return fmt.Errorf("venta a crédito de %s para %q (disponible %s): %w",
				totals.Total.StringFixed(2), customer.Name,
				customer.AvailableCredit().StringFixed(2), domain.ErrCreditLimitExceeded)
		}
	}

	if !st.Settings.AllowNegativeStock {
		for _, it := range items {
			if st.GetStock(it.ProductID, c.BranchID) < it.Quantity {
				return fmt.Errorf("%q: %w", it.Name, domain.ErrInsufficientStock)
			}
		}
	}

	// A partir de aquí no hay más validaciones: se aplican todos los cambios.
	for _, it := range items {
		st.AdjustStock(it.ProductID, c.BranchID, -it.Quantity)
	}
	if c.PaymentMethod == entity.SaleCredit {
		st.Customers[ci].CurrentBalance = st.Customers[ci].CurrentBalance.Add(totals.Total)
	}

	sale := entity.Sale{
		ID:                 nextSaleID(st, c.At),
		Date:               c.At,
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		BranchID:           c.BranchID,
		Items:              items,
		Subtotal:           totals.Subtotal,
		DiscountPercentage: discount,
		DiscountAmount:     totals.DiscountAmount,
		Tax:                totals.Tax,
		Total:              totals.Total,
		User:               c.Actor,
		PaymentMethod:      c.PaymentMethod,
		Comments:           c.Comments,
	}
	st.Sales = append([]entity.Sale{sale}, st.Sales...)

	if c.PaymentMethod == entity.SaleCash {
		if si := st.ActiveSessionIndex(c.BranchID); si >= 0 {
			st.ActiveSessions[si].CashSales = st.ActiveSessions[si].CashSales.Add(sale.Total)
		}
	}

	st.Log(c.Actor, fmt.Sprintf("Venta %s realizada por %s", sale.ID, sale.Total.StringFixed(2)),
		c.At, state.Ref(entity.AuditSale, sale.ID))
	c.Sale = sale
	return nil
}

// nextSaleID asigna el correlativo {prefijo}{n con 5 dígitos} e incrementa el contador,
// o {prefijo}{unix ms} si la numeración correlativa está desactivada. En ese caso el
// milisegundo avanza mientras el id ya exista (ventas simultáneas en otras sucursales).
func nextSaleID(st *state.State, at time.Time) string {
	s := &st.Settings
	if !s.EnableCorrelative {
		ms := at.UnixMilli()
		for {
			id := fmt.Sprintf("%s%d", s.DocumentPrefix, ms)
			if _, taken := st.SaleByID(id); !taken {
				return id
			}
			ms++
		}
	}
	id := fmt.Sprintf("%s%05d", s.DocumentPrefix, s.CorrelativeNextNumber)
	s.CorrelativeNextNumber++
	return id
}
