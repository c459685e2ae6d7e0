package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/medisupply/fieldkit/internal/coerce"
	"github.com/medisupply/fieldkit/pkg/sanitizer"
	"github.com/medisupply/fieldkit/pkg/validator"
)

const (
	maxAddressLength = 200
	maxNotesLength   = 500

	// maxUnits caps stock and order quantities so they always fit an int.
	maxUnits = math.MaxInt32
)

// ClientForm is raw client input as typed on the registration screen.
type ClientForm struct {
	Name    string
	NIT     string
	Email   string
	Phone   string
	Address string
	City    string
}

// Build normalizes the form, validates it and returns a new Client.
func (f ClientForm) Build() (*Client, error) {
	name := sanitizer.Apply(f.Name, sanitizer.RemoveControlChars, sanitizer.RemoveExtraWhitespace)
	nit := sanitizer.NormalizeNIT(f.NIT)
	email := sanitizer.NormalizeEmail(f.Email)
	phone := sanitizer.NormalizePhone(f.Phone)
	address := sanitizer.Apply(f.Address, sanitizer.RemoveControlChars, sanitizer.RemoveExtraWhitespace)
	city := sanitizer.RemoveExtraWhitespace(f.City)

	if err := validator.Apply(
		validator.RequiredField("name", name),
		validator.ValidNIT("nit", nit),
		validator.ValidEmail("email", email),
		validator.ValidPhone("phone", phone),
		validator.RequiredField("address", address),
		validator.MaxLenString("address", address, maxAddressLength),
		validator.RequiredField("city", city),
	); err != nil {
		return nil, err
	}

	return &Client{
		ID:      newID(),
		Name:    name,
		NIT:     nit,
		Email:   email,
		Phone:   phone,
		Address: address,
		City:    city,
	}, nil
}

// ProductForm accepts prices in Colombian notation ("125.000", "1.234,50").
// ExpiryDate may be left empty for products that do not expire.
type ProductForm struct {
	SKU        string
	Name       string
	Category   string
	Price      string
	Stock      string
	ExpiryDate string
}

func (f ProductForm) Build() (*Product, error) {
	sku := sanitizer.Apply(f.SKU, sanitizer.Trim, strings.ToUpper)
	name := sanitizer.Apply(f.Name, sanitizer.RemoveControlChars, sanitizer.RemoveExtraWhitespace)
	category := sanitizer.TrimToLower(f.Category)
	price := sanitizer.NormalizeDecimal(f.Price)
	stock := sanitizer.NormalizeDecimal(f.Stock)
	expiry := sanitizer.Trim(f.ExpiryDate)

	rules := []validator.Rule{
		validator.RequiredField("sku", sku),
		validator.RequiredField("name", name),
		validator.ValidPrice("price", price),
		wholeUnits("stock", stock, 0, "validation.stock"),
	}
	if expiry != "" {
		rules = append(rules, validator.FutureExpiryDate("expiry_date", expiry))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	p := &Product{
		ID:       newID(),
		SKU:      sku,
		Name:     name,
		Category: category,
	}
	p.Price, _ = coerce.Float(price)
	units, _ := coerce.Float(stock)
	p.Stock = int(units)
	if expiry != "" {
		p.ExpiryDate, _ = coerce.Time(expiry, false)
	}
	return p, nil
}

type OrderItemForm struct {
	ProductID string
	Quantity  string
	UnitPrice string
}

// OrderForm defaults Status to pending when left empty.
type OrderForm struct {
	ClientID string
	Status   string
	Items    []OrderItemForm
}

func (f OrderForm) Build() (*Order, error) {
	clientID := sanitizer.Trim(f.ClientID)
	status := OrderStatus(sanitizer.TrimToLower(f.Status))
	if status == "" {
		status = OrderPending
	}

	rules := []validator.Rule{
		validator.RequiredField("client_id", clientID),
		validator.InList("status", status, OrderStatuses),
		validator.RequiredField("items", f.Items),
	}

	items := make([]OrderItem, len(f.Items))
	for i, in := range f.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		productID := sanitizer.Trim(in.ProductID)
		quantity := sanitizer.NormalizeDecimal(in.Quantity)
		unitPrice := sanitizer.NormalizeDecimal(in.UnitPrice)

		rules = append(rules,
			validator.RequiredField(prefix+".product_id", productID),
			wholeUnits(prefix+".quantity", quantity, 1, "validation.quantity"),
			validator.ValidPrice(prefix+".unit_price", unitPrice),
		)

		qty, _ := coerce.Float(quantity)
		price, _ := coerce.Float(unitPrice)
		items[i] = OrderItem{ProductID: productID, Quantity: int(qty), UnitPrice: price}
	}

	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	return &Order{
		ID:        newID(),
		ClientID:  clientID,
		Items:     items,
		Status:    status,
		CreatedAt: time.Now(),
	}, nil
}

// VisitForm defaults Status to pending and Priority to medium.
type VisitForm struct {
	ClientID    string
	ScheduledAt string
	Status      string
	Priority    string
	Notes       string
}

func (f VisitForm) Build() (*Visit, error) {
	clientID := sanitizer.Trim(f.ClientID)
	scheduledAt := sanitizer.Trim(f.ScheduledAt)
	status := VisitStatus(sanitizer.TrimToLower(f.Status))
	if status == "" {
		status = VisitPending
	}
	priority := Priority(sanitizer.TrimToLower(f.Priority))
	if priority == "" {
		priority = PriorityMedium
	}
	notes := sanitizer.Apply(f.Notes, sanitizer.RemoveControlChars, sanitizer.Trim)

	if err := validator.Apply(
		validator.RequiredField("client_id", clientID),
		validator.ValidDate("scheduled_at", scheduledAt),
		validator.InList("status", status, VisitStatuses),
		validator.InList("priority", priority, Priorities),
		validator.MaxLenString("notes", notes, maxNotesLength),
	); err != nil {
		return nil, err
	}

	when, _ := coerce.Time(scheduledAt, false)
	return &Visit{
		ID:          newID(),
		ClientID:    clientID,
		ScheduledAt: when,
		Status:      status,
		Priority:    priority,
		Notes:       notes,
	}, nil
}

// wholeUnits accepts whole numbers from least to maxUnits.
func wholeUnits(field, value string, least int, key string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			q, ok := coerce.Float(value)
			return ok && q == math.Trunc(q) && q >= float64(least) && q <= maxUnits
		},
		Error: validator.ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be a whole number between %d and %d", least, maxUnits),
			TranslationKey:    key,
			TranslationValues: map[string]any{"field": field, "min": least, "max": maxUnits},
		},
	}
}
