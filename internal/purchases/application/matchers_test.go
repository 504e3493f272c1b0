package application

import (
	"fmt"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type purchaseMatcher struct {
	id     int
	userId int
	status domain.Status
	total  decimal.Decimal
}

// purchaseWith matches a domain.Purchase by value, comparing the total numerically.
func purchaseWith(id, userId int, status domain.Status, total string) gomock.Matcher {
	return purchaseMatcher{id: id, userId: userId, status: status, total: dec(total)}
}

func (m purchaseMatcher) Matches(x any) bool {
	p, ok := x.(domain.Purchase)
	if !ok {
		return false
	}

	return p.Id == m.id && p.UserId == m.userId && p.Status == m.status && p.Total.Equal(m.total)
}

func (m purchaseMatcher) String() string {
	return fmt.Sprintf("purchase{id=%d user=%d status=%s total=%s}", m.id, m.userId, m.status, m.total)
}

type detailsMatcher struct {
	items []domain.EventItem
}

// detailsWith matches detail rows by product and quantity in order.
func detailsWith(items ...domain.EventItem) gomock.Matcher {
	return detailsMatcher{items: items}
}

func (m detailsMatcher) Matches(x any) bool {
	details, ok := x.([]domain.PurchaseDetail)
	if !ok || len(details) != len(m.items) {
		return false
	}

	for i, d := range details {
		if d.ProductId != m.items[i].ProductId || d.Quantity != m.items[i].Quantity {
			return false
		}
	}

	return true
}

func (m detailsMatcher) String() string {
	return fmt.Sprintf("details %v", m.items)
}

type eventMatcher struct {
	eventType  domain.EventType
	purchaseId int
	items      int
}

func eventOf(eventType domain.EventType, purchaseId, items int) gomock.Matcher {
	return eventMatcher{eventType: eventType, purchaseId: purchaseId, items: items}
}

func (m eventMatcher) Matches(x any) bool {
	event, ok := x.(domain.PurchaseEvent)
	if !ok {
		return false
	}

	return event.Type == m.eventType && event.PurchaseId == m.purchaseId && len(event.Items) == m.items && !event.OccurredAt.IsZero()
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("%s event for purchase %d with %d items", m.eventType, m.purchaseId, m.items)
}
