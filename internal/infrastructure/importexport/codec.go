// Package importexport lee y escribe el inventario en CSV o JSON.
package importexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
)

var _ ports.CatalogCodec = Codec{}

// Codec implementa ports.CatalogCodec.
type Codec struct{}

// Encode escribe las filas. El CSV lleva encabezado con el orden fijo de catalog.Columns.
func (Codec) Encode(w io.Writer, format string, rows []catalog.Row) error {
	switch format {
	case ports.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if rows == nil {
			rows = []catalog.Row{}
		}
		return enc.Encode(rows)
	case ports.FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(catalog.Columns); err != nil {
			return err
		}
		for _, r := range rows {
			rec := []string{
				r.ID, r.Name, r.SKU, strconv.Itoa(r.LowStockAlert),
				r.Price.String(), r.Cost.String(), r.CategoryID, r.ExpiryDate, r.ImageURL,
				strconv.Itoa(r.Stock),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
}

// Decode lee filas. Los CSV exportados desde hojas de cálculo suelen venir en
// Windows-1252: si el contenido no es UTF-8 válido se convierte.
func (Codec) Decode(r io.Reader, format string) ([]catalog.Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	switch format {
	case ports.FormatJSON:
		var rows []catalog.Row
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("json de inventario: %v: %w", err, domain.ErrInvalidInput)
		}
		return rows, nil
	case ports.FormatCSV:
		var src io.Reader = bytes.NewReader(raw)
		if !utf8.Valid(raw) {
			src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
		}
		return decodeCSV(src)
	}
	return nil, fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
}

func decodeCSV(r io.Reader) ([]catalog.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv de inventario: %v: %w", err, domain.ErrInvalidInput)
	}
	if len(records) == 0 {
		return nil, nil
	}
	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(rec []string, name string) string {
		i, ok := col[strings.ToLower(name)]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	rows := make([]catalog.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		rows = append(rows, catalog.Row{
			ID:            get(rec, "id"),
			Name:          get(rec, "name"),
			SKU:           get(rec, "sku"),
			LowStockAlert: atoi(get(rec, "lowStockAlert")),
			Price:         dec(get(rec, "price")),
			Cost:          dec(get(rec, "cost")),
			CategoryID:    get(rec, "categoryId"),
			ExpiryDate:    get(rec, "expiryDate"),
			ImageURL:      get(rec, "imageUrl"),
			Stock:         atoi(get(rec, "stock")),
		})
	}
	return rows, nil
}

// Los valores numéricos ilegibles se toman como cero; los desbordados se acotan a
// ±MaxInt32 para que los ajustes de stock posteriores no desborden.
func atoi(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if (err != nil && !math.IsInf(f, 0)) || math.IsNaN(f) {
		return 0
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Trunc(f))))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
