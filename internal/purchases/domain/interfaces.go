package domain

import (
	"context"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
)

// StockLedger is the only writer of product stock.
type StockLedger interface {
	LockProducts(ctx context.Context, querier database.Querier, productIds []int) (map[int]ProductInfo, error)
	Reserve(ctx context.Context, querier database.Querier, productId int, quantity int) (string, error)
	Release(ctx context.Context, executor database.Executor, productId int, quantity int) error
}

type PurchasesRepository interface {
	LockPurchase(ctx context.Context, querier database.Querier, purchaseId int) (Purchase, error)
	FetchDetails(ctx context.Context, querier database.Querier, purchaseId int) ([]PurchaseDetail, error)
	InsertPurchase(ctx context.Context, querier database.Querier, purchase Purchase) (int, error)
	InsertDetails(ctx context.Context, executor database.Executor, purchaseId int, details []PurchaseDetail) error
	UpdatePurchase(ctx context.Context, executor database.Executor, purchase Purchase) error
	DeleteDetails(ctx context.Context, executor database.Executor, purchaseId int) error
	DeletePurchase(ctx context.Context, executor database.Executor, purchaseId int) error
}

type PurchaseReader interface {
	FetchPurchase(ctx context.Context, purchaseId int) (PurchaseView, error)
	FetchPurchases(ctx context.Context) ([]PurchaseView, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event PurchaseEvent) error
}

type ViewCache interface {
	Get(ctx context.Context, purchaseId int) (PurchaseView, bool, error)
	Set(ctx context.Context, view PurchaseView) error
	Invalidate(ctx context.Context, purchaseId int) error
}

type PurchaseCommander interface {
	CreatePurchase(ctx context.Context, payload PurchasePayload) (int, error)
	UpdatePurchase(ctx context.Context, purchaseId int, payload PurchasePayload) error
	DeletePurchase(ctx context.Context, purchaseId int) error
}

type PurchaseQuerier interface {
	GetPurchase(ctx context.Context, purchaseId int) (PurchaseView, error)
	ListPurchases(ctx context.Context) ([]PurchaseView, error)
}
