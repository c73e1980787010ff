// Package catalog contiene los comandos del catálogo de productos, categorías y
// existencias, y las alertas derivadas del stock.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

func validateProduct(p entity.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("nombre y sku son requeridos: %w", domain.ErrInvalidInput)
	}
	if p.Price.IsNegative() || p.Cost.IsNegative() || p.LowStockAlert < 0 {
		return fmt.Errorf("precio, costo y alerta no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	if p.ExpiryDate != "" {
		if _, ok := p.ExpiresOn(); !ok {
			return fmt.Errorf("fecha de vencimiento %q: %w", p.ExpiryDate, domain.ErrInvalidInput)
		}
	}
	return nil
}

// SaveProductCommand crea (ID vacío) o actualiza un producto. InitialStock, si no es
// nil, fija la existencia en BranchID. El SKU no se valida como único aquí (solo la
// importación masiva descarta duplicados).
type SaveProductCommand struct {
	Product      entity.Product
	BranchID     string
	InitialStock *int
	Actor        string
	At           time.Time
}

func (c *SaveProductCommand) Name() string { return "catalog.product.save" }

func (c *SaveProductCommand) Apply(st *state.State) error {
	in := c.Product
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if err := validateProduct(in); err != nil {
		return err
	}
	if in.CategoryID != "" && state.CategoryIndex(st.ProductCategories, in.CategoryID) < 0 {
		return fmt.Errorf("categoría %q: %w", in.CategoryID, domain.ErrNotFound)
	}
	action := "Producto actualizado: "
	if in.ID == "" {
		in.ID = uuid.NewString()
		st.Products = append(st.Products, in)
		action = "Producto creado: "
	} else {
		i := st.ProductIndex(in.ID)
		if i < 0 {
			return fmt.Errorf("producto %q: %w", in.ID, domain.ErrNotFound)
		}
		st.Products[i] = in
	}
	if c.InitialStock != nil {
		if st.BranchIndex(c.BranchID) < 0 {
			return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
		}
		st.SetStock(in.ID, c.BranchID, *c.InitialStock)
	}
	st.Log(c.Actor, action+in.Name, c.At, state.Ref(entity.AuditProduct, in.ID))
	c.Product = in
	return nil
}

// DeleteProductCommand elimina el producto y sus existencias en todas las sucursales.
type DeleteProductCommand struct {
	ProductID string
	Actor     string
	At        time.Time
}

func (c *DeleteProductCommand) Name() string { return "catalog.product.delete" }

func (c *DeleteProductCommand) Apply(st *state.State) error {
	i := st.ProductIndex(c.ProductID)
	if i < 0 {
		return fmt.Errorf("producto %q: %w", c.ProductID, domain.ErrNotFound)
	}
	name := st.Products[i].Name
	st.Products = append(st.Products[:i:i], st.Products[i+1:]...)
	st.DeleteStockFor(c.ProductID)
	st.Log(c.Actor, "Producto eliminado: "+name, c.At, nil)
	return nil
}

// SetStockCommand fija la existencia de un producto en una sucursal (ajuste manual).
type SetStockCommand struct {
	ProductID string
	BranchID  string
	Quantity  int
	Actor     string
	At        time.Time
}

func (c *SetStockCommand) Name() string { return "catalog.stock.set" }

func (c *SetStockCommand) Apply(st *state.State) error {
	i := st.ProductIndex(c.ProductID)
	if i < 0 {
		return fmt.Errorf("producto %q: %w", c.ProductID, domain.ErrNotFound)
	}
	if st.BranchIndex(c.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}
	prev := st.GetStock(c.ProductID, c.BranchID)
	st.SetStock(c.ProductID, c.BranchID, c.Quantity)
	st.Log(c.Actor, fmt.Sprintf("Stock de %s ajustado de %d a %d", st.Products[i].Name, prev, c.Quantity),
		c.At, state.Ref(entity.AuditProduct, c.ProductID))
	return nil
}
