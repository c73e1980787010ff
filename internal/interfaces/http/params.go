package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDateRange lee from/to (YYYY-MM-DD o RFC3339). Un "to" de solo fecha cubre el día completo.
func parseDateRange(c *fiber.Ctx) (dto.DateRange, error) {
	var r dto.DateRange
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		t, _, err := parseDate(s)
		if err != nil {
			return r, err
		}
		r.From = t
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		t, dateOnly, err := parseDate(s)
		if err != nil {
			return r, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = t
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, domain.ErrInvalidInput
	}
	return r, nil
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, domain.ErrInvalidInput
	}
	return t, false, nil
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

// sendPDF escribe un PDF como adjunto.
func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
