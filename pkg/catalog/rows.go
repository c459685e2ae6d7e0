package catalog

import (
	"github.com/medisupply/fieldkit/pkg/format"
)

const notesPreviewLength = 80

// Labels resolves status and priority codes to display text.
// *format.Labeler implements it.
type Labels interface {
	OrderStatus(code string) string
	VisitStatus(code string) string
	Priority(code string) string
}

type defaultLabels struct{}

func (defaultLabels) OrderStatus(code string) string { return format.OrderStatus(code) }
func (defaultLabels) VisitStatus(code string) string { return format.VisitStatus(code) }
func (defaultLabels) Priority(code string) string    { return format.Priority(code) }

type ClientRow struct {
	Name    string
	NIT     string
	Email   string
	Phone   string
	Address string
	City    string
}

func (c Client) Row() ClientRow {
	return ClientRow{
		Name:    format.CapitalizeWords(c.Name),
		NIT:     format.NIT(c.NIT),
		Email:   c.Email,
		Phone:   format.Phone(c.Phone),
		Address: c.Address,
		City:    format.CapitalizeWords(c.City),
	}
}

type ProductRow struct {
	SKU        string
	Name       string
	Category   string
	Price      string
	Stock      string
	ExpiryDate string
}

// Row leaves ExpiryDate empty for products without one.
func (p Product) Row() ProductRow {
	return ProductRow{
		SKU:        p.SKU,
		Name:       p.Name,
		Category:   format.CapitalizeFirst(p.Category),
		Price:      format.Currency(p.Price),
		Stock:      format.Number(p.Stock),
		ExpiryDate: format.Date(p.ExpiryDate),
	}
}

type OrderRow struct {
	ID        string
	Items     string
	Total     string
	Status    string
	CreatedAt string
}

func (o Order) Row() OrderRow {
	return o.RowWith(defaultLabels{})
}

func (o Order) RowWith(labels Labels) OrderRow {
	return OrderRow{
		ID:        o.ID,
		Items:     format.Number(len(o.Items)),
		Total:     format.Currency(o.Total()),
		Status:    labels.OrderStatus(string(o.Status)),
		CreatedAt: format.DateTime(o.CreatedAt),
	}
}

type VisitRow struct {
	ScheduledAt string
	Status      string
	Priority    string
	Notes       string
}

func (v Visit) Row() VisitRow {
	return v.RowWith(defaultLabels{})
}

// RowWith shortens notes to a preview; the full text stays on the Visit.
func (v Visit) RowWith(labels Labels) VisitRow {
	return VisitRow{
		ScheduledAt: format.DateTime(v.ScheduledAt),
		Status:      labels.VisitStatus(string(v.Status)),
		Priority:    labels.Priority(string(v.Priority)),
		Notes:       format.TruncateText(v.Notes, notesPreviewLength),
	}
}
