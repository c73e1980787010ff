package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// BranchRequest alta o edición de sucursal.
type BranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateSettingsRequest actualización parcial de la configuración del negocio:
// los campos nil no se modifican.
type UpdateSettingsRequest struct {
	CompanyName   *string `json:"companyName"`
	CompanyNIT    *string `json:"companyNit"`
	LogoURL       *string `json:"logoUrl"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Slogan        *string `json:"slogan"`
	FooterMessage *string `json:"footerMessage"`

	DocumentPrefix        *string `json:"documentPrefix"`
	EnableCorrelative     *bool   `json:"enableCorrelative"`
	CorrelativeNextNumber *int    `json:"correlativeNextNumber"`

	CurrencySymbol   *string          `json:"currencySymbol"`
	DateFormat       *string          `json:"dateFormat"`
	NumberFormat     *string          `json:"numberFormat"`
	TaxRate          *decimal.Decimal `json:"taxRate"`
	PricesIncludeTax *bool            `json:"pricesIncludeTax"`
	PrintSize        *string          `json:"printSize"`

	EnabledModules *[]entity.View `json:"enabledModules"`
	PlanID         *entity.PlanID `json:"planId"`

	AllowNegativeStock         *bool `json:"allowNegativeStock"`
	EnforceSupplierCreditLimit *bool `json:"enforceSupplierCreditLimit"`
	WeightedCostOnPurchase     *bool `json:"weightedCostOnPurchase"`
}

// Merge aplica los campos presentes sobre s.
func (r UpdateSettingsRequest) Merge(s entity.Settings) entity.Settings {
	set(&s.CompanyName, r.CompanyName)
	set(&s.CompanyNIT, r.CompanyNIT)
	set(&s.LogoURL, r.LogoURL)
	set(&s.Address, r.Address)
	set(&s.Phone, r.Phone)
	set(&s.Slogan, r.Slogan)
	set(&s.FooterMessage, r.FooterMessage)
	set(&s.DocumentPrefix, r.DocumentPrefix)
	set(&s.EnableCorrelative, r.EnableCorrelative)
	set(&s.CorrelativeNextNumber, r.CorrelativeNextNumber)
	set(&s.CurrencySymbol, r.CurrencySymbol)
	set(&s.DateFormat, r.DateFormat)
	set(&s.NumberFormat, r.NumberFormat)
	set(&s.TaxRate, r.TaxRate)
	set(&s.PricesIncludeTax, r.PricesIncludeTax)
	set(&s.PrintSize, r.PrintSize)
	set(&s.EnabledModules, r.EnabledModules)
	set(&s.PlanID, r.PlanID)
	set(&s.AllowNegativeStock, r.AllowNegativeStock)
	set(&s.EnforceSupplierCreditLimit, r.EnforceSupplierCreditLimit)
	set(&s.WeightedCostOnPurchase, r.WeightedCostOnPurchase)
	return s
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// PlanResponse capacidades del plan vigente.
type PlanResponse struct {
	ID          entity.PlanID `json:"id"`
	Name        string        `json:"name"`
	MaxBranches int           `json:"maxBranches"`
	MaxUsers    int           `json:"maxUsers"`
	Excluded    []entity.View `json:"excluded"`
	Branches    int           `json:"branches"`
	Users       int           `json:"users"`
}

// AuditFilter filtros del historial de auditoría.
type AuditFilter struct {
	DateRange
	User   string
	Search string
	Page   PageRequest
}

// AuditListResponse página del historial.
type AuditListResponse struct {
	Entries []entity.AuditLog `json:"entries"`
	Page    PageResponse      `json:"page"`
}

// AuditDetailResponse detalle resuelto de una entrada. Found es false si la entidad
// referenciada ya no existe.
type AuditDetailResponse struct {
	Entry  entity.AuditLog `json:"entry"`
	Found  bool            `json:"found"`
	Type   string          `json:"type,omitempty"`
	Detail any             `json:"detail,omitempty"`
}
