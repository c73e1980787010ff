package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/zenith-pos/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func oneItem(price string) []pricing.Line {
	return []pricing.Line{{UnitPrice: d(price), Quantity: 1}}
}

func TestCompute_ImpuestoExcluido(t *testing.T) {
	got := pricing.Compute(oneItem("100"), decimal.Zero, d("12"), false)

	assert.True(t, got.Subtotal.Equal(d("100.00")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Tax.Equal(d("12.00")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(d("112.00")), "total %s", got.Total)
}

func TestCompute_ImpuestoIncluido(t *testing.T) {
	got := pricing.Compute(oneItem("100"), decimal.Zero, d("12"), true)

	assert.True(t, got.Total.Equal(d("100.00")), "total %s", got.Total)
	assert.True(t, got.Tax.Equal(d("10.71")), "tax %s", got.Tax)
	assert.True(t, got.Subtotal.Equal(d("89.29")), "subtotal %s", got.Subtotal)
}

func TestCompute_TotalIgualSubtotalMasImpuesto(t *testing.T) {
	carts := [][]pricing.Line{
		{{UnitPrice: d("1.5"), Quantity: 3}, {UnitPrice: d("25"), Quantity: 2}},
		{{UnitPrice: d("1200"), Quantity: 1}},
		{{UnitPrice: d("0.33"), Quantity: 7}},
	}
	discounts := []string{"0", "10", "33.3", "100"}
	for _, cart := range carts {
		for _, disc := range discounts {
			for _, incl := range []bool{true, false} {
				got := pricing.Compute(cart, d(disc), d("12"), incl)
				assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)),
					"incl=%v desc=%s: %s != %s + %s", incl, disc, got.Total, got.Subtotal, got.Tax)
			}
		}
	}
}

func TestCompute_DescuentoSobreSubtotal(t *testing.T) {
	lines := []pricing.Line{{UnitPrice: d("50"), Quantity: 2}}

	got := pricing.Compute(lines, d("10"), d("12"), false)

	assert.True(t, got.Gross.Equal(d("100")))
	assert.True(t, got.DiscountAmount.Equal(d("10")))
	assert.True(t, got.Subtotal.Equal(d("90")))
	assert.True(t, got.Tax.Equal(d("10.80")))
	assert.True(t, got.Total.Equal(d("100.80")))
}

func TestClampDiscount(t *testing.T) {
	assert.True(t, pricing.ClampDiscount(d("-5")).IsZero())
	assert.True(t, pricing.ClampDiscount(d("150")).Equal(d("100")))
	assert.True(t, pricing.ClampDiscount(d("15")).Equal(d("15")))
}
