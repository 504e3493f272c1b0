package http

import (
	"encoding/json"
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type detailRequestBody struct {
	ProductId int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// purchaseRequestBody serves both create and partial update. Absent fields stay nil.
type purchaseRequestBody struct {
	UserId  *int                `json:"user_id"`
	Status  *string             `json:"status"`
	Details []detailRequestBody `json:"details"`
}

func (b purchaseRequestBody) toPayload() domain.PurchasePayload {
	payload := domain.PurchasePayload{UserId: b.UserId}

	if b.Status != nil {
		status := domain.Status(*b.Status)
		payload.Status = &status
	}

	if b.Details != nil {
		payload.Details = make([]domain.DetailInput, 0, len(b.Details))
		for _, d := range b.Details {
			payload.Details = append(payload.Details, domain.DetailInput{
				ProductId: d.ProductId,
				Quantity:  d.Quantity,
				Price:     d.Price,
			})
		}
	}

	return payload
}

type detailResponse struct {
	Id       int         `json:"id"`
	Product  string      `json:"product"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
	Subtotal json.Number `json:"subtotal"`
}

type purchaseResponse struct {
	Id           int              `json:"id"`
	User         string           `json:"user"`
	Total        json.Number      `json:"total"`
	Status       string           `json:"status"`
	PurchaseDate time.Time        `json:"purchase_date"`
	Details      []detailResponse `json:"details"`
}

func newPurchaseResponse(view domain.PurchaseView) purchaseResponse {
	details := make([]detailResponse, 0, len(view.Details))
	for _, d := range view.Details {
		details = append(details, detailResponse{
			Id:       d.Id,
			Product:  d.Product,
			Quantity: d.Quantity,
			Price:    money(d.Price),
			Subtotal: money(d.Subtotal),
		})
	}

	return purchaseResponse{
		Id:           view.Id,
		User:         view.User,
		Total:        money(view.Total),
		Status:       string(view.Status),
		PurchaseDate: view.PurchaseDate,
		Details:      details,
	}
}

func money(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(moneyPlaces))
}
