package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxItems = 5
	MaxTotal = 3500

	moneyPlaces = 2
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// IsTerminal reports whether a purchase in this status may no longer be mutated or deleted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

type Purchase struct {
	Id           int
	UserId       int
	Status       Status
	Total        decimal.Decimal
	PurchaseDate time.Time
	UpdatedAt    time.Time
}

type PurchaseDetail struct {
	Id         int
	PurchaseId int
	ProductId  int
	Quantity   int
	Price      decimal.Decimal
	Subtotal   decimal.Decimal
}

type ProductInfo struct {
	Id    int
	Name  string
	Stock int
}

// PurchasePayload is the inbound command body. Nil fields are absent;
// a nil Details slice means "not supplied", an empty one is supplied and invalid.
type PurchasePayload struct {
	UserId  *int
	Status  *Status
	Details []DetailInput
}

type DetailInput struct {
	ProductId int
	Quantity  int
	Price     *decimal.Decimal
}

type PurchaseView struct {
	Id           int
	User         string
	Total        decimal.Decimal
	Status       Status
	PurchaseDate time.Time
	Details      []DetailView
}

type DetailView struct {
	Id       int
	Product  string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}

func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlaces)
}

func Subtotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return RoundMoney(decimal.NewFromInt(int64(quantity)).Mul(price))
}

// BuildDetails prices every line and returns the detail rows with their total.
// Inputs must already be validated.
func BuildDetails(inputs []DetailInput) ([]PurchaseDetail, decimal.Decimal) {
	details := make([]PurchaseDetail, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		// Prices are stored with cent precision, subtotals follow the stored price.
		price := RoundMoney(*in.Price)
		subtotal := Subtotal(in.Quantity, price)
		details = append(details, PurchaseDetail{
			ProductId: in.ProductId,
			Quantity:  in.Quantity,
			Price:     price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return details, total
}

// QuantitiesByProduct sums detail quantities per product.
func QuantitiesByProduct(details []PurchaseDetail) map[int]int {
	quantities := make(map[int]int, len(details))
	for _, d := range details {
		quantities[d.ProductId] += d.Quantity
	}

	return quantities
}
