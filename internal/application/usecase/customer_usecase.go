package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/credit"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// CustomerUseCase clientes y proveedores con sus cuentas de crédito.
type CustomerUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(runner ports.StateRunner) *CustomerUseCase {
	return &CustomerUseCase{runner: runner, now: time.Now}
}

// ListCustomers lista clientes; search filtra por nombre, NIT o email.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(st.Customers))
	for _, c := range st.Customers {
		if matches(search, c.Name, c.NIT, c.Email) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetCustomer obtiene un cliente con su historial de pagos.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.CustomerIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
	}
	c := st.Customers[i]
	return &c, nil
}

// SaveCustomer crea (id vacío) o actualiza un cliente.
func (uc *CustomerUseCase) SaveCustomer(ctx context.Context, actor ports.Actor, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	cmd := &credit.SaveCustomerCommand{
		Customer: entity.Customer{
			ID: id, Name: strings.TrimSpace(in.Name), NIT: in.NIT, CUI: in.CUI,
			Email: in.Email, Phone: in.Phone, Address: in.Address,
			CreditAccount: entity.CreditAccount{CreditLimit: in.CreditLimit, CreditDays: in.CreditDays},
		},
		Actor: actor.Name,
		At:    uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Customer, nil
}

// DeleteCustomer elimina un cliente (el cliente genérico está protegido).
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, actor ports.Actor, id string) error {
	_, err := uc.runner.Dispatch(ctx, &credit.DeleteCustomerCommand{ID: id, Actor: actor.Name, At: uc.now()})
	return err
}

// ListSuppliers lista proveedores; search filtra por nombre, contacto o email.
func (uc *CustomerUseCase) ListSuppliers(ctx context.Context, search string) ([]entity.Supplier, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, 0, len(st.Suppliers))
	for _, s := range st.Suppliers {
		if matches(search, s.Name, s.ContactPerson, s.Email) {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetSupplier obtiene un proveedor con su historial de pagos.
func (uc *CustomerUseCase) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.SupplierIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("proveedor %q: %w", id, domain.ErrNotFound)
	}
	s := st.Suppliers[i]
	return &s, nil
}

// SaveSupplier crea (id vacío) o actualiza un proveedor.
func (uc *CustomerUseCase) SaveSupplier(ctx context.Context, actor ports.Actor, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	cmd := &credit.SaveSupplierCommand{
		Supplier: entity.Supplier{
			ID: id, Name: strings.TrimSpace(in.Name), ContactPerson: in.ContactPerson,
			Email: in.Email, Phone: in.Phone,
			CreditAccount: entity.CreditAccount{CreditLimit: in.CreditLimit, CreditDays: in.CreditDays},
		},
		Actor: actor.Name,
		At:    uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Supplier, nil
}

// DeleteSupplier elimina un proveedor.
func (uc *CustomerUseCase) DeleteSupplier(ctx context.Context, actor ports.Actor, id string) error {
	_, err := uc.runner.Dispatch(ctx, &credit.DeleteSupplierCommand{ID: id, Actor: actor.Name, At: uc.now()})
	return err
}

// RecordPayment registra un abono contra el saldo de un cliente o proveedor.
func (uc *CustomerUseCase) RecordPayment(ctx context.Context, actor ports.Actor, party credit.Party, id string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	if !method.Valid() {
		return nil, fmt.Errorf("medio de pago %q: %w", method, domain.ErrInvalidInput)
	}
	cmd := &credit.RecordPaymentCommand{
		Party: party, ID: id, Amount: in.Amount, Method: method, Notes: in.Notes,
		Actor: actor.Name, At: uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: cmd.Payment, Balance: cmd.Balance}, nil
}

// matches indica si alguno de los campos contiene search (sin distinguir mayúsculas).
func matches(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
