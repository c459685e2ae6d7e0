package catalog

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

type VisitStatus string

const (
	VisitPending    VisitStatus = "pending"
	VisitInProgress VisitStatus = "in-progress"
	VisitCompleted  VisitStatus = "completed"
	VisitCancelled  VisitStatus = "cancelled"
)

var VisitStatuses = []VisitStatus{VisitPending, VisitInProgress, VisitCompleted, VisitCancelled}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Client is a pharmacy, clinic or hospital the sales rep serves.
type Client struct {
	ID      string
	Name    string
	NIT     string
	Email   string
	Phone   string
	Address string
	City    string
}

// Product is an inventory line. ExpiryDate is zero for non-perishables.
type Product struct {
	ID         string
	SKU        string
	Name       string
	Category   string
	Price      float64
	Stock      int
	ExpiryDate time.Time
}

// Expired reports whether the product has an expiry date at or before now.
func (p Product) Expired(now time.Time) bool {
	return !p.ExpiryDate.IsZero() && !p.ExpiryDate.After(now)
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Order references its client by id only; the reference is not checked.
type Order struct {
	ID        string
	ClientID  string
	Items     []OrderItem
	Status    OrderStatus
	CreatedAt time.Time
}

func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

type Visit struct {
	ID          string
	ClientID    string
	ScheduledAt time.Time
	Status      VisitStatus
	Priority    Priority
	Notes       string
}

func newID() string {
	return uuid.NewString()
}
