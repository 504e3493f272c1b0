package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const viewKeyPrefix = "purchases:view:"

type cachedView struct {
	Id           int            `json:"id"`
	User         string         `json:"user"`
	Total        string         `json:"total"`
	Status       string         `json:"status"`
	PurchaseDate time.Time      `json:"purchase_date"`
	Details      []cachedDetail `json:"details"`
}

type cachedDetail struct {
	Id       int    `json:"id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// ViewCache keeps rendered purchase views in Redis for a fixed TTL.
type ViewCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewViewCache(client redis.Cmdable, ttl time.Duration) *ViewCache {
	return &ViewCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ViewCache) Get(ctx context.Context, purchaseId int) (domain.PurchaseView, bool, error) {
	data, err := c.client.Get(ctx, viewKey(purchaseId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PurchaseView{}, false, nil
	}
	if err != nil {
		return domain.PurchaseView{}, false, fmt.Errorf("failed to read purchase %d view: %w", purchaseId, err)
	}

	view, err := decodeView(data)
	if err != nil {
		return domain.PurchaseView{}, false, fmt.Errorf("failed to decode purchase %d view: %w", purchaseId, err)
	}

	return view, true, nil
}

func (c *ViewCache) Set(ctx context.Context, view domain.PurchaseView) error {
	data, err := encodeView(view)
	if err != nil {
		return fmt.Errorf("failed to encode purchase %d view: %w", view.Id, err)
	}

	err = c.client.Set(ctx, viewKey(view.Id), data, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store purchase %d view: %w", view.Id, err)
	}

	return nil
}

func (c *ViewCache) Invalidate(ctx context.Context, purchaseId int) error {
	err := c.client.Del(ctx, viewKey(purchaseId)).Err()
	if err != nil {
		return fmt.Errorf("failed to invalidate purchase %d view: %w", purchaseId, err)
	}

	return nil
}

func viewKey(purchaseId int) string {
	return viewKeyPrefix + strconv.Itoa(purchaseId)
}

func encodeView(view domain.PurchaseView) ([]byte, error) {
	details := make([]cachedDetail, 0, len(view.Details))
	for _, d := range view.Details {
		details = append(details, cachedDetail{
			Id:       d.Id,
			Product:  d.Product,
			Quantity: d.Quantity,
			Price:    d.Price.StringFixed(2),
			Subtotal: d.Subtotal.StringFixed(2),
		})
	}

	return json.Marshal(cachedView{
		Id:           view.Id,
		User:         view.User,
		Total:        view.Total.StringFixed(2),
		Status:       string(view.Status),
		PurchaseDate: view.PurchaseDate,
		Details:      details,
	})
}

func decodeView(data []byte) (domain.PurchaseView, error) {
	var cached cachedView
	err := json.Unmarshal(data, &cached)
	if err != nil {
		return domain.PurchaseView{}, err
	}

	total, err := decimal.NewFromString(cached.Total)
	if err != nil {
		return domain.PurchaseView{}, err
	}

	details := make([]domain.DetailView, 0, len(cached.Details))
	for _, d := range cached.Details {
		price, err := decimal.NewFromString(d.Price)
		if err != nil {
			return domain.PurchaseView{}, err
		}

		subtotal, err := decimal.NewFromString(d.Subtotal)
		if err != nil {
			return domain.PurchaseView{}, err
		}

		details = append(details, domain.DetailView{
			Id:       d.Id,
			Product:  d.Product,
			Quantity: d.Quantity,
			Price:    price,
			Subtotal: subtotal,
		})
	}

	return domain.PurchaseView{
		Id:           cached.Id,
		User:         cached.User,
		Total:        total,
		Status:       domain.Status(cached.Status),
		PurchaseDate: cached.PurchaseDate,
		Details:      details,
	}, nil
}

// NopViewCache never stores anything, so every read goes to the database.
type NopViewCache struct{}

func (NopViewCache) Get(context.Context, int) (domain.PurchaseView, bool, error) {
	return domain.PurchaseView{}, false, nil
}

func (NopViewCache) Set(context.Context, domain.PurchaseView) error {
	return nil
}

func (NopViewCache) Invalidate(context.Context, int) error {
	return nil
}
