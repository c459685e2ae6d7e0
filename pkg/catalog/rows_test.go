package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/catalog"
	"github.com/medisupply/fieldkit/pkg/format"
)

func TestClientRow(t *testing.T) {
	t.Parallel()

	got := catalog.Client{
		Name:    "droguería central",
		NIT:     "9001234567",
		Email:   "compras@drogueria.co",
		Phone:   "+573001234567",
		Address: "Calle 10 # 5-20",
		City:    "bogotá",
	}.Row()

	want := catalog.ClientRow{
		Name:    "Droguería Central",
		NIT:     "900.123.456-7",
		Email:   "compras@drogueria.co",
		Phone:   "+57 300 123 4567",
		Address: "Calle 10 # 5-20",
		City:    "Bogotá",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Client.Row() mismatch (-want +got):\n%s", diff)
	}
}

func TestProductRow(t *testing.T) {
	t.Parallel()

	product := catalog.Product{
		SKU:        "AMX-500",
		Name:       "Amoxicilina 500mg",
		Category:   "antibióticos",
		Price:      1234567.5,
		Stock:      1200,
		ExpiryDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.Local),
	}

	want := catalog.ProductRow{
		SKU:        "AMX-500",
		Name:       "Amoxicilina 500mg",
		Category:   "Antibióticos",
		Price:      "$1.234.567,5",
		Stock:      "1.200",
		ExpiryDate: "31/01/2026",
	}
	if diff := cmp.Diff(want, product.Row()); diff != "" {
		t.Errorf("Product.Row() mismatch (-want +got):\n%s", diff)
	}

	product.ExpiryDate = time.Time{}
	if got := product.Row().ExpiryDate; got != "" {
		t.Errorf("ExpiryDate = %q, want empty", got)
	}
}

func TestOrderRow(t *testing.T) {
	t.Parallel()

	order := catalog.Order{
		ID: "o-1",
		Items: []catalog.OrderItem{
			{ProductID: "p-1", Quantity: 3, UnitPrice: 12500},
			{ProductID: "p-2", Quantity: 1, UnitPrice: 3000},
		},
		Status:    catalog.OrderShipped,
		CreatedAt: time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC),
	}

	want := catalog.OrderRow{
		ID:        "o-1",
		Items:     "2",
		Total:     "$40.500",
		Status:    "Enviado",
		CreatedAt: "10/03/2025 14:05",
	}
	if diff := cmp.Diff(want, order.Row()); diff != "" {
		t.Errorf("Order.Row() mismatch (-want +got):\n%s", diff)
	}

	en, err := format.NewLabeler(context.Background(), "en-US")
	require.NoError(t, err)
	if got := order.RowWith(en).Status; got != "Shipped" {
		t.Errorf("RowWith(en).Status = %q, want %q", got, "Shipped")
	}
}

func TestVisitRow(t *testing.T) {
	t.Parallel()

	long := "Revisar inventario de antibióticos y confirmar el pedido mensual con la jefe de compras antes del cierre."
	visit := catalog.Visit{
		ScheduledAt: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		Status:      catalog.VisitInProgress,
		Priority:    catalog.PriorityUrgent,
		Notes:       long,
	}

	got := visit.Row()
	want := catalog.VisitRow{
		ScheduledAt: "10/03/2025 09:30",
		Status:      "En progreso",
		Priority:    "Urgente",
		Notes:       format.TruncateText(long, 80),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visit.Row() mismatch (-want +got):\n%s", diff)
	}
	if visit.Notes != long {
		t.Error("Row must not modify the visit notes")
	}
}

func strs[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func TestStatusCodesHaveLabels(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(format.OrderStatusCodes, strs(catalog.OrderStatuses)); diff != "" {
		t.Errorf("order statuses (-labels +catalog):\n%s", diff)
	}
	if diff := cmp.Diff(format.VisitStatusCodes, strs(catalog.VisitStatuses)); diff != "" {
		t.Errorf("visit statuses (-labels +catalog):\n%s", diff)
	}
	if diff := cmp.Diff(format.PriorityCodes, strs(catalog.Priorities)); diff != "" {
		t.Errorf("priorities (-labels +catalog):\n%s", diff)
	}
}
