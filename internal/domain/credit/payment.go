// Package credit administra clientes, proveedores y abonos a sus cuentas corrientes.
package credit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// Party indica sobre qué colección opera el comando.
type Party string

const (
	PartyCustomer Party = "customer"
	PartySupplier Party = "supplier"
)

// RecordPayment valida el abono y lo aplica a la cuenta: 0 < monto <= saldo,
// saldo -= monto y el pago queda primero en el historial.
func RecordPayment(acc *entity.CreditAccount, p entity.Payment) error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("abono %s: %w", p.Amount, domain.ErrInvalidAmount)
	}
	if p.Amount.GreaterThan(acc.CurrentBalance) {
		return fmt.Errorf("abono %s con saldo %s: %w", p.Amount.StringFixed(2),
			acc.CurrentBalance.StringFixed(2), domain.ErrPaymentExceedsBalance)
	}
	if !p.PaymentMethod.Valid() {
		return fmt.Errorf("medio de pago %q: %w", p.PaymentMethod, domain.ErrInvalidInput)
	}
	acc.CurrentBalance = acc.CurrentBalance.Sub(p.Amount)
	acc.PaymentHistory = append([]entity.Payment{p}, acc.PaymentHistory...)
	return nil
}

// RecordPaymentCommand registra un abono de un cliente o a un proveedor.
type RecordPaymentCommand struct {
	Party  Party
	ID     string
	Amount decimal.Decimal
	Method entity.PaymentMethod
	Notes  string
	Actor  string
	At     time.Time

	Payment entity.Payment
	Balance decimal.Decimal
}

func (c *RecordPaymentCommand) Name() string { return "credit.payment." + string(c.Party) }

// Apply implementa state.Command.
func (c *RecordPaymentCommand) Apply(st *state.State) error {
	acc, name, kind, err := account(st, c.Party, c.ID)
	if err != nil {
		return err
	}
	p := entity.Payment{
		ID:            uuid.NewString(),
		Date:          c.At,
		Amount:        c.Amount,
		PaymentMethod: c.Method,
		Notes:         c.Notes,
	}
	if err := RecordPayment(acc, p); err != nil {
		return err
	}
	st.Log(c.Actor, fmt.Sprintf("Pago de %s registrado para %s", c.Amount.StringFixed(2), name),
		c.At, state.Ref(kind, c.ID))
	c.Payment = p
	c.Balance = acc.CurrentBalance
	return nil
}

func account(st *state.State, party Party, id string) (*entity.CreditAccount, string, entity.AuditKind, error) {
	switch party {
	case PartyCustomer:
		if i := st.CustomerIndex(id); i >= 0 {
			return &st.Customers[i].CreditAccount, st.Customers[i].Name, entity.AuditCustomer, nil
		}
		return nil, "", "", fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
	case PartySupplier:
		if i := st.SupplierIndex(id); i >= 0 {
			return &st.Suppliers[i].CreditAccount, st.Suppliers[i].Name, entity.AuditSupplier, nil
		}
		return nil, "", "", fmt.Errorf("proveedor %q: %w", id, domain.ErrNotFound)
	}
	return nil, "", "", fmt.Errorf("tipo de cuenta %q: %w", party, domain.ErrInvalidInput)
}
