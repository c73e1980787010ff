// Package sales contiene los casos de uso del punto de venta: cobro, historial y
// comprobante imprimible.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	domainsales "github.com/jhoicas/zenith-pos/internal/domain/sales"
)

// SalesUseCase cobro de ventas y consultas del historial de la sucursal.
type SalesUseCase struct {
	runner ports.StateRunner
	docs   ports.DocumentGenerator
	now    func() time.Time
}

// NewSalesUseCase construye el caso de uso. docs puede ser nil si no se generan PDF.
func NewSalesUseCase(runner ports.StateRunner, docs ports.DocumentGenerator) *SalesUseCase {
	return &SalesUseCase{runner: runner, docs: docs, now: time.Now}
}

// Checkout cobra el carrito en la sucursal del actor. Todo el cobro es una sola
// transición: si algo falla no se descuenta stock ni se consume correlativo.
func (uc *SalesUseCase) Checkout(ctx context.Context, actor ports.Actor, in dto.CheckoutRequest) (*entity.Sale, error) {
	items := make([]domainsales.CartItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domainsales.CartItem{
			ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price, Cost: it.Cost,
		})
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.SaleCash
	}
	cmd := &domainsales.CheckoutCommand{
		BranchID:           actor.BranchID,
		CustomerID:         in.CustomerID,
		Items:              items,
		DiscountPercentage: in.DiscountPercentage,
		PaymentMethod:      method,
		Comments:           strings.TrimSpace(in.Comments),
		Actor:              actor.Name,
		At:                 uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Sale, nil
}

// List devuelve el historial de ventas de la sucursal (más reciente primero), filtrado
// y paginado.
func (uc *SalesUseCase) List(ctx context.Context, branchID string, f dto.SaleFilter) (*dto.SaleListResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	f.Page.DefaultPage()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var hits []entity.Sale
	for _, v := range st.Sales {
		if v.BranchID != branchID || !f.Contains(v.Date) {
			continue
		}
		if f.CustomerID != "" && v.CustomerID != f.CustomerID {
			continue
		}
		if f.PaymentMethod != "" && v.PaymentMethod != f.PaymentMethod {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.ID), search) &&
			!strings.Contains(strings.ToLower(v.CustomerName), search) {
			continue
		}
		hits = append(hits, v)
	}
	lo, hi := f.Page.Window(len(hits))
	page := hits[lo:hi]
	if page == nil {
		page = []entity.Sale{}
	}
	return &dto.SaleListResponse{
		Sales: page,
		Page:  dto.PageResponse{Limit: f.Page.Limit, Offset: f.Page.Offset, Total: len(hits)},
	}, nil
}

// Get obtiene una venta de la sucursal del actor.
//
// Retorna:
//   - domain.ErrNotFound  si la venta no existe.
//   - domain.ErrForbidden si pertenece a otra sucursal.
func (uc *SalesUseCase) Get(ctx context.Context, actor ports.Actor, id string) (*entity.Sale, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	v, ok := st.SaleByID(id)
	if !ok {
		return nil, fmt.Errorf("venta %q: %w", id, domain.ErrNotFound)
	}
	if v.BranchID != actor.BranchID {
		return nil, fmt.Errorf("venta %q: %w", id, domain.ErrForbidden)
	}
	return &v, nil
}

// ReceiptPDF genera el comprobante de la venta. El cliente se resuelve al momento de
// imprimir; si ya no existe se usan los datos congelados en la venta.
func (uc *SalesUseCase) ReceiptPDF(ctx context.Context, actor ports.Actor, id string) (pdf []byte, filename string, err error) {
	if uc.docs == nil {
		return nil, "", fmt.Errorf("comprobantes PDF no configurados: %w", domain.ErrConflict)
	}
	v, err := uc.Get(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	data := ports.ReceiptData{
		Sale:        *v,
		Settings:    st.Settings,
		Customer:    entity.Customer{ID: v.CustomerID, Name: v.CustomerName},
		ProductSKUs: make(map[string]string, len(v.Items)),
	}
	if i := st.BranchIndex(v.BranchID); i >= 0 {
		data.Branch = st.Branches[i]
	}
	if i := st.CustomerIndex(v.CustomerID); i >= 0 {
		data.Customer = st.Customers[i]
	}
	for _, it := range v.Items {
		if i := st.ProductIndex(it.ProductID); i >= 0 {
			data.ProductSKUs[it.ProductID] = st.Products[i].SKU
		}
	}
	pdf, err = uc.docs.ReceiptPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return pdf, fmt.Sprintf("comprobante-%s.pdf", v.ID), nil
}
