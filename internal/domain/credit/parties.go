package credit

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

func validateAccount(name string, acc entity.CreditAccount) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if acc.CreditLimit.IsNegative() || acc.CurrentBalance.IsNegative() || acc.CreditDays < 0 {
		return fmt.Errorf("límite, saldo y días no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	return nil
}

// SaveCustomerCommand crea (ID vacío) o actualiza un cliente. En la creación se admite
// un saldo inicial; en la actualización el saldo y el historial de pagos se conservan,
// solo cambian con ventas a crédito y abonos.
type SaveCustomerCommand struct {
	Customer entity.Customer
	Actor    string
	At       time.Time
}

func (c *SaveCustomerCommand) Name() string { return "credit.customer.save" }

func (c *SaveCustomerCommand) Apply(st *state.State) error {
	in := c.Customer
	if err := validateAccount(in.Name, in.CreditAccount); err != nil {
		return err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
		in.PaymentHistory = nil
		st.Customers = append(st.Customers, in)
		st.Log(c.Actor, "Cliente creado: "+in.Name, c.At, state.Ref(entity.AuditCustomer, in.ID))
	} else {
		i := st.CustomerIndex(in.ID)
		if i < 0 {
			return fmt.Errorf("cliente %q: %w", in.ID, domain.ErrNotFound)
		}
		in.CurrentBalance = st.Customers[i].CurrentBalance
		in.PaymentHistory = st.Customers[i].PaymentHistory
		st.Customers[i] = in
		st.Log(c.Actor, "Cliente actualizado: "+in.Name, c.At, state.Ref(entity.AuditCustomer, in.ID))
	}
	c.Customer = in
	return nil
}

// DeleteCustomerCommand elimina un cliente. El cliente genérico no se puede eliminar.
type DeleteCustomerCommand struct {
	ID    string
	Actor string
	At    time.Time
}

func (c *DeleteCustomerCommand) Name() string { return "credit.customer.delete" }

func (c *DeleteCustomerCommand) Apply(st *state.State) error {
	if c.ID == entity.WalkInCustomerID {
		return fmt.Errorf("el cliente general no se puede eliminar: %w", domain.ErrConflict)
	}
	i := st.CustomerIndex(c.ID)
	if i < 0 {
		return fmt.Errorf("cliente %q: %w", c.ID, domain.ErrNotFound)
	}
	name := st.Customers[i].Name
	st.Customers = append(st.Customers[:i:i], st.Customers[i+1:]...)
	st.Log(c.Actor, "Cliente eliminado: "+name, c.At, nil)
	return nil
}

// SaveSupplierCommand crea (ID vacío) o actualiza un proveedor. El saldo se conserva
// en la actualización, igual que en los clientes.
type SaveSupplierCommand struct {
	Supplier entity.Supplier
	Actor    string
	At       time.Time
}

func (c *SaveSupplierCommand) Name() string { return "credit.supplier.save" }

func (c *SaveSupplierCommand) Apply(st *state.State) error {
	in := c.Supplier
	if err := validateAccount(in.Name, in.CreditAccount); err != nil {
		return err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
		in.PaymentHistory = nil
		st.Suppliers = append(st.Suppliers, in)
		st.Log(c.Actor, "Proveedor creado: "+in.Name, c.At, state.Ref(entity.AuditSupplier, in.ID))
	} else {
		i := st.SupplierIndex(in.ID)
		if i < 0 {
			return fmt.Errorf("proveedor %q: %w", in.ID, domain.ErrNotFound)
		}
		in.CurrentBalance = st.Suppliers[i].CurrentBalance
		in.PaymentHistory = st.Suppliers[i].PaymentHistory
		st.Suppliers[i] = in
		st.Log(c.Actor, "Proveedor actualizado: "+in.Name, c.At, state.Ref(entity.AuditSupplier, in.ID))
	}
	c.Supplier = in
	return nil
}

// DeleteSupplierCommand elimina un proveedor.
type DeleteSupplierCommand struct {
	ID    string
	Actor string
	At    time.Time
}

func (c *DeleteSupplierCommand) Name() string { return "credit.supplier.delete" }

func (c *DeleteSupplierCommand) Apply(st *state.State) error {
	i := st.SupplierIndex(c.ID)
	if i < 0 {
		return fmt.Errorf("proveedor %q: %w", c.ID, domain.ErrNotFound)
	}
	name := st.Suppliers[i].Name
	st.Suppliers = append(st.Suppliers[:i:i], st.Suppliers[i+1:]...)
	st.Log(c.Actor, "Proveedor eliminado: "+name, c.At, nil)
	return nil
}
