package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventPurchaseCreated EventType = "purchase.created"
	EventPurchaseUpdated EventType = "purchase.updated"
	EventPurchaseDeleted EventType = "purchase.deleted"
)

// PurchaseEvent describes a committed mutation.
type PurchaseEvent struct {
	Type       EventType
	PurchaseId int
	UserId     int
	Status     Status
	Total      decimal.Decimal
	Items      []EventItem
	OccurredAt time.Time
}

type EventItem struct {
	ProductId int
	Quantity  int
}

func NewEventItems(details []PurchaseDetail) []EventItem {
	items := make([]EventItem, 0, len(details))
	for _, d := range details {
		items = append(items, EventItem{ProductId: d.ProductId, Quantity: d.Quantity})
	}

	return items
}
