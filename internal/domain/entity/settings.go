package entity

import "github.com/shopspring/decimal"

// Formatos admitidos.
const (
	DateDMY = "DD/MM/YYYY"
	DateMDY = "MM/DD/YYYY"
	DateISO = "YYYY-MM-DD"

	NumberEnUS = "en-US"
	NumberDeDE = "de-DE"
)

// Settings configuración única del tenant.
type Settings struct {
	CompanyName   string `json:"companyName"`
	CompanyNIT    string `json:"companyNit"`
	LogoURL       string `json:"logoUrl,omitempty"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Slogan        string `json:"slogan,omitempty"`
	FooterMessage string `json:"footerMessage"`

	DocumentPrefix        string `json:"documentPrefix"`
	EnableCorrelative     bool   `json:"enableCorrelative"`
	CorrelativeNextNumber int    `json:"correlativeNextNumber"`

	CurrencySymbol   string          `json:"currencySymbol"`
	DateFormat       string          `json:"dateFormat"`
	NumberFormat     string          `json:"numberFormat"`
	TaxRate          decimal.Decimal `json:"taxRate"` // porcentaje
	PricesIncludeTax bool            `json:"pricesIncludeTax"`
	PrintSize        string          `json:"printSize"`

	EnabledModules []View `json:"enabledModules"`
	PlanID         PlanID `json:"planId"`

	// Permite que una venta deje el stock en negativo (comportamiento histórico).
	AllowNegativeStock bool `json:"allowNegativeStock"`
	// Aplica el límite de crédito del proveedor en compras (desactivado por defecto).
	EnforceSupplierCreditLimit bool `json:"enforceSupplierCreditLimit"`
	// Recalcula el costo del producto con promedio ponderado al registrar compras.
	// Desactivado: la compra no modifica el costo del catálogo.
	WeightedCostOnPurchase bool `json:"weightedCostOnPurchase"`
}

// DefaultSettings valores iniciales del tenant.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:           "Zenith Solutions",
		CompanyNIT:            "1234567-8",
		Address:               "Av. Principal 456, Ciudad Capital",
		Phone:                 "+1 (555) 123-4567",
		Slogan:                "Tu negocio, a otro nivel.",
		FooterMessage:         "¡Gracias por su compra, vuelva pronto!",
		DocumentPrefix:        "FAC-",
		EnableCorrelative:     true,
		CorrelativeNextNumber: 1,
		CurrencySymbol:        "$",
		DateFormat:            DateDMY,
		NumberFormat:          NumberEnUS,
		TaxRate:               decimal.NewFromInt(12),
		PricesIncludeTax:      true,
		PrintSize:             "80mm",
		EnabledModules:        AllViews(),
		PlanID:                PlanProfessional,
		AllowNegativeStock:    true,
	}
}

// ModuleEnabled indica si la vista está en la lista de módulos habilitados.
// Dashboard y Configuración son módulos base y siempre están habilitados.
func (s Settings) ModuleEnabled(v View) bool {
	if v == ViewDashboard || v == ViewSettings {
		return true
	}
	for _, m := range s.EnabledModules {
		if m == v {
			return true
		}
	}
	return false
}
