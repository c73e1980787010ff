package catalog

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// ExpiryWindowDays días antes del vencimiento en que se alerta.
const ExpiryWindowDays = 30

// AlertKind tipo de alerta de inventario.
type AlertKind string

const (
	AlertLowStock     AlertKind = "lowStock"
	AlertExpiringSoon AlertKind = "expiringSoon"
)

// Alert alerta derivada del stock de una sucursal. Key es estable por producto y tipo.
type Alert struct {
	Key       string         `json:"key"`
	Kind      AlertKind      `json:"kind"`
	Product   entity.Product `json:"product"`
	Stock     int            `json:"stock"`
	DaysUntil int            `json:"daysUntil,omitempty"`
}

// LowStockKey clave de la alerta de stock bajo.
func LowStockKey(productID string) string { return "low-stock-" + productID }

// ExpiryKey clave de la alerta de vencimiento.
func ExpiryKey(productID string) string { return "expiry-" + productID }

// DaysUntil días (redondeados hacia arriba) entre now y la fecha de vencimiento.
func DaysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// Alerts calcula las alertas vigentes de la sucursal, omitiendo las descartadas.
// Solo alertan productos con stock positivo.
func Alerts(st *state.State, branchID string, now time.Time) []Alert {
	var out []Alert
	for _, p := range st.Products {
		stock := st.GetStock(p.ID, branchID)
		if stock <= 0 {
			continue
		}
		if stock <= p.LowStockAlert {
			if k := LowStockKey(p.ID); !slices.Contains(st.DismissedAlerts, k) {
				out = append(out, Alert{Key: k, Kind: AlertLowStock, Product: p, Stock: stock})
			}
		}
		if exp, ok := p.ExpiresOn(); ok {
			days := DaysUntil(exp, now)
			k := ExpiryKey(p.ID)
			if days > 0 && days <= ExpiryWindowDays && !slices.Contains(st.DismissedAlerts, k) {
				out = append(out, Alert{Key: k, Kind: AlertExpiringSoon, Product: p, Stock: stock, DaysUntil: days})
			}
		}
	}
	return out
}

// DismissAlertCommand marca una alerta como descartada (semántica de conjunto).
type DismissAlertCommand struct {
	Key string
}

func (c *DismissAlertCommand) Name() string { return "catalog.alert.dismiss" }

func (c *DismissAlertCommand) Apply(st *state.State) error {
	key := strings.TrimSpace(c.Key)
	if !strings.HasPrefix(key, "low-stock-") && !strings.HasPrefix(key, "expiry-") {
		return fmt.Errorf("alerta %q: %w", c.Key, domain.ErrInvalidInput)
	}
	if !slices.Contains(st.DismissedAlerts, key) {
		st.DismissedAlerts = append(st.DismissedAlerts, key)
	}
	return nil
}
