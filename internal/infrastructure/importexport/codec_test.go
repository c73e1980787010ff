package importexport

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
)

var rows = []catalog.Row{
	{ID: "p1", Name: "Leche, entera", SKU: "L-1", LowStockAlert: 5, Price: decimal.RequireFromString("2.5"),
		Cost: decimal.NewFromInt(1), CategoryID: "4", ExpiryDate: "2026-06-01", Stock: 12},
}

func TestEncodeCSV_OrdenDeColumnasYComillas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Codec{}.Encode(&buf, ports.FormatCSV, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,sku,lowStockAlert,price,cost,categoryId,expiryDate,imageUrl,stock", lines[0])
	assert.Equal(t, `p1,"Leche, entera",L-1,5,2.5,1,4,2026-06-01,,12`, lines[1])
}

func TestCSV_IdaYVuelta(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Codec{}.Encode(&buf, ports.FormatCSV, rows))

	back, err := Codec{}.Decode(&buf, ports.FormatCSV)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "Leche, entera", back[0].Name)
	assert.Equal(t, 12, back[0].Stock)
	assert.True(t, back[0].Price.Equal(decimal.RequireFromString("2.5")))
}

func TestDecodeCSV_ColumnasEnOtroOrdenYFaltantes(t *testing.T) {
	in := "sku,name,stock,price\nM-1,Mouse,3,abc\n\nT-1,Teclado,x,10\n"

	got, err := Codec{}.Decode(strings.NewReader(in), ports.FormatCSV)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "M-1", got[0].SKU)
	assert.Equal(t, 3, got[0].Stock)
	assert.True(t, got[0].Price.IsZero())
	assert.Equal(t, 0, got[1].Stock)
	assert.Empty(t, got[1].ID)
}

func TestDecodeCSV_ValoresFueraDeRango(t *testing.T) {
	in := "sku,stock,lowStockAlert\nA-1,1e30,-1e30\nB-1,99999999999999999999,NaN\nC-1,1e400,7.9\n"

	got, err := Codec{}.Decode(strings.NewReader(in), ports.FormatCSV)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, math.MaxInt32, got[0].Stock)
	assert.Equal(t, math.MinInt32, got[0].LowStockAlert)
	assert.Equal(t, math.MaxInt32, got[1].Stock)
	assert.Equal(t, 0, got[1].LowStockAlert)
	assert.Equal(t, math.MaxInt32, got[2].Stock)
	assert.Equal(t, 7, got[2].LowStockAlert)
}

func TestDecodeCSV_Windows1252(t *testing.T) {
	// "Café" con é = 0xE9.
	in := []byte("sku,name\nC-1,Caf\xe9\n")

	got, err := Codec{}.Decode(bytes.NewReader(in), ports.FormatCSV)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Café", got[0].Name)
}

func TestDecodeJSON(t *testing.T) {
	in := `[{"name":"Cámara","sku":"CAM-1","price":80,"stock":2}]`

	got, err := Codec{}.Decode(strings.NewReader(in), ports.FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(80)))

	_, err = Codec{}.Decode(strings.NewReader(`{`), ports.FormatJSON)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatoDesconocido(t *testing.T) {
	_, err := Codec{}.Decode(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
