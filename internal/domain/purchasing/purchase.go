// Package purchasing contiene el comando de compras a proveedores.
package purchasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// Item línea de compra.
type Item struct {
	ProductID string
	Quantity  int
	Cost      decimal.Decimal
}

// PurchaseCommand registra una compra: suma stock en la sucursal, suma el total al saldo
// del proveedor, actualiza el costo promedio del producto y audita.
// No hay validación de límite de crédito salvo que la configuración lo pida.
type PurchaseCommand struct {
	BranchID        string
	SupplierID      string
	Items           []Item
	Comments        string
	ReceiptImageURL string
	Actor           string
	At              time.Time

	Purchase entity.Purchase
}

func (c *PurchaseCommand) Name() string { return "purchasing.register" }

// Apply implementa state.Command.
func (c *PurchaseCommand) Apply(st *state.State) error {
	if len(c.Items) == 0 {
		return domain.ErrEmptyCart
	}
	if st.BranchIndex(c.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}
	si := st.SupplierIndex(c.SupplierID)
	if si < 0 {
		return fmt.Errorf("proveedor %q: %w", c.SupplierID, domain.ErrNotFound)
	}

	items := make([]entity.PurchaseItem, 0, len(c.Items))
	total := decimal.Zero
	for _, it := range c.Items {
		if it.Quantity <= 0 || it.Cost.IsNegative() {
			return fmt.Errorf("línea %q: %w", it.ProductID, domain.ErrInvalidInput)
		}
		pi := st.ProductIndex(it.ProductID)
		if pi < 0 {
			return fmt.Errorf("producto %q: %w", it.ProductID, domain.ErrNotFound)
		}
		items = append(items, entity.PurchaseItem{
			ProductID: it.ProductID, Name: st.Products[pi].Name, Quantity: it.Quantity, Cost: it.Cost,
		})
		total = total.Add(it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	total = total.Round(2)

	supplier := st.Suppliers[si]
	if st.Settings.EnforceSupplierCreditLimit && total.GreaterThan(supplier.AvailableCredit()) {
		return fmt.Errorf("compra de %s a %q: %w", total.StringFixed(2), supplier.Name, domain.ErrCreditLimitExceeded)
	}

	for _, it := range items {
		if st.Settings.WeightedCostOnPurchase {
			pi := st.ProductIndex(it.ProductID)
			onHand := totalStock(st, it.ProductID)
			st.Products[pi].Cost = WeightedCost(onHand, st.Products[pi].Cost, it.Quantity, it.Cost)
		}
		st.AdjustStock(it.ProductID, c.BranchID, it.Quantity)
	}
	st.Suppliers[si].CurrentBalance = supplier.CurrentBalance.Add(total)

	p := entity.Purchase{
		ID:              uuid.NewString(),
		Date:            c.At,
		SupplierID:      supplier.ID,
		SupplierName:    supplier.Name,
		BranchID:        c.BranchID,
		Items:           items,
		Total:           total,
		User:            c.Actor,
		Comments:        c.Comments,
		ReceiptImageURL: c.ReceiptImageURL,
	}
	st.Purchases = append([]entity.Purchase{p}, st.Purchases...)
	st.Log(c.Actor, fmt.Sprintf("Compra #%s registrada", p.ID), c.At, state.Ref(entity.AuditPurchase, p.ID))
	c.Purchase = p
	return nil
}

// totalStock suma la existencia del producto en todas las sucursales.
func totalStock(st *state.State, productID string) int {
	n := 0
	for _, e := range st.Stock {
		if e.ProductID == productID {
			n += e.Stock
		}
	}
	return n
}
