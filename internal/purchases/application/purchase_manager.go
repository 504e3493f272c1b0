package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/shopspring/decimal"
)

// PurchaseManager runs the create/update/delete lifecycle of purchases. Every
// stock movement and row change of one call happens inside a single transaction.
const (
	defaultPostCommitTimeout = 3 * time.Second
	invalidateAttempts       = 2
)

type PurchaseManager struct {
	txManager  database.TxManager
	ledger     domain.StockLedger
	repository domain.PurchasesRepository
	publisher  domain.EventPublisher
	cache      domain.ViewCache
	logger     logging.Logger

	// postCommitTimeout bounds event publishing and cache invalidation after commit.
	postCommitTimeout time.Duration
}

func NewPurchaseManager(
	txManager database.TxManager,
	ledger domain.StockLedger,
	repository domain.PurchasesRepository,
	publisher domain.EventPublisher,
	cache domain.ViewCache,
	logger logging.Logger,
) *PurchaseManager {
	return &PurchaseManager{
		txManager:  txManager,
		ledger:     ledger,
		repository: repository,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,

		postCommitTimeout: defaultPostCommitTimeout,
	}
}

func (pm *PurchaseManager) CreatePurchase(ctx context.Context, payload domain.PurchasePayload) (int, error) {
	err := domain.ValidatePurchase(payload, domain.CreateMode)
	if err != nil {
		return 0, err
	}

	details, total := domain.BuildDetails(payload.Details)
	err = domain.CheckTotal(total)
	if err != nil {
		return 0, err
	}

	purchase := domain.Purchase{
		UserId: *payload.UserId,
		Status: *payload.Status,
		Total:  total,
	}

	err = pm.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		products, err := pm.lockProducts(ctx, executor, details)
		if err != nil {
			return err
		}

		err = checkStock(products, details, nil)
		if err != nil {
			return err
		}

		purchase.Id, err = pm.repository.InsertPurchase(ctx, executor, purchase)
		if err != nil {
			return err
		}

		err = pm.repository.InsertDetails(ctx, executor, purchase.Id, details)
		if err != nil {
			return err
		}

		return pm.reserveAll(ctx, executor, details)
	})
	if err != nil {
		return 0, err
	}

	pm.publish(ctx, domain.EventPurchaseCreated, purchase, details)

	return purchase.Id, nil
}

// UpdatePurchase applies the present payload fields. The total is recomputed
// only when details are supplied; otherwise the stored total is kept.
func (pm *PurchaseManager) UpdatePurchase(ctx context.Context, purchaseId int, payload domain.PurchasePayload) error {
	err := domain.ValidatePurchase(payload, domain.UpdateMode)
	if err != nil {
		return err
	}

	replaceDetails := payload.Details != nil

	var (
		details []domain.PurchaseDetail
		total   decimal.Decimal
		updated domain.Purchase
	)

	if replaceDetails {
		details, total = domain.BuildDetails(payload.Details)

		err = domain.CheckTotal(total)
		if err != nil {
			return err
		}
	}

	err = pm.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		current, err := pm.lockMutable(ctx, executor, purchaseId)
		if err != nil {
			return err
		}

		updated = current
		if payload.UserId != nil {
			updated.UserId = *payload.UserId
		}
		if payload.Status != nil {
			updated.Status = *payload.Status
		}

		if replaceDetails {
			previous, err := pm.repository.FetchDetails(ctx, executor, purchaseId)
			if err != nil {
				return err
			}

			// Old and new products are locked together in id order before any stock moves.
			products, err := pm.lockProducts(ctx, executor, previous, details)
			if err != nil {
				return err
			}

			err = pm.releaseAll(ctx, executor, previous)
			if err != nil {
				return err
			}

			// Stock handed back by this purchase counts toward its new allocation.
			err = checkStock(products, details, domain.QuantitiesByProduct(previous))
			if err != nil {
				return err
			}

			updated.Total = total
		}

		err = pm.repository.UpdatePurchase(ctx, executor, updated)
		if err != nil {
			return err
		}

		if !replaceDetails {
			return nil
		}

		err = pm.repository.DeleteDetails(ctx, executor, purchaseId)
		if err != nil {
			return err
		}

		err = pm.repository.InsertDetails(ctx, executor, purchaseId, details)
		if err != nil {
			return err
		}

		return pm.reserveAll(ctx, executor, details)
	})
	if err != nil {
		return err
	}

	pm.invalidate(ctx, purchaseId)
	pm.publish(ctx, domain.EventPurchaseUpdated, updated, details)

	return nil
}

// DeletePurchase returns every reserved unit to stock and removes the purchase.
// Detail rows are removed by the purchase_details foreign key cascade.
func (pm *PurchaseManager) DeletePurchase(ctx context.Context, purchaseId int) error {
	var (
		deleted  domain.Purchase
		previous []domain.PurchaseDetail
	)

	err := pm.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		var err error

		deleted, err = pm.lockMutable(ctx, executor, purchaseId)
		if err != nil {
			return err
		}

		previous, err = pm.repository.FetchDetails(ctx, executor, purchaseId)
		if err != nil {
			return err
		}

		err = pm.releaseAll(ctx, executor, previous)
		if err != nil {
			return err
		}

		return pm.repository.DeletePurchase(ctx, executor, purchaseId)
	})
	if err != nil {
		return err
	}

	pm.invalidate(ctx, purchaseId)
	pm.publish(ctx, domain.EventPurchaseDeleted, deleted, previous)

	return nil
}

func (pm *PurchaseManager) lockMutable(ctx context.Context, querier database.Querier, purchaseId int) (domain.Purchase, error) {
	purchase, err := pm.repository.LockPurchase(ctx, querier, purchaseId)
	if err != nil {
		return domain.Purchase{}, err
	}

	if purchase.Status.IsTerminal() {
		return domain.Purchase{}, &domain.PurchaseCompletedError{
			Msg: fmt.Sprintf("purchase %d is %s and can no longer be modified or deleted", purchaseId, purchase.Status),
		}
	}

	return purchase, nil
}

// lockProducts row-locks every product referenced by the given detail sets.
func (pm *PurchaseManager) lockProducts(ctx context.Context, querier database.Querier, detailSets ...[]domain.PurchaseDetail) (map[int]domain.ProductInfo, error) {
	var productIds []int
	for _, details := range detailSets {
		for _, d := range details {
			productIds = append(productIds, d.ProductId)
		}
	}
	slices.Sort(productIds)
	productIds = slices.Compact(productIds)

	return pm.ledger.LockProducts(ctx, querier, productIds)
}

// checkStock tests each line against the locked stock plus any quantity released by the same purchase.
func checkStock(products map[int]domain.ProductInfo, details []domain.PurchaseDetail, released map[int]int) error {
	for _, d := range details {
		product, found := products[d.ProductId]
		if !found {
			return domain.NewProductNotFoundError(d.ProductId)
		}

		if product.Stock+released[d.ProductId] < d.Quantity {
			return domain.NewInsufficientStockError(product.Id, product.Name)
		}
	}

	return nil
}

func (pm *PurchaseManager) reserveAll(ctx context.Context, querier database.Querier, details []domain.PurchaseDetail) error {
	for _, d := range details {
		_, err := pm.ledger.Reserve(ctx, querier, d.ProductId, d.Quantity)
		if err != nil {
			return err
		}
	}

	return nil
}

func (pm *PurchaseManager) releaseAll(ctx context.Context, executor database.Executor, details []domain.PurchaseDetail) error {
	quantities := domain.QuantitiesByProduct(details)

	productIds := make([]int, 0, len(quantities))
	for productId := range quantities {
		productIds = append(productIds, productId)
	}
	slices.Sort(productIds)

	for _, productId := range productIds {
		err := pm.ledger.Release(ctx, executor, productId, quantities[productId])
		if err != nil {
			return err
		}
	}

	return nil
}

// postCommitContext ignores request cancellation and is bounded by postCommitTimeout.
func (pm *PurchaseManager) postCommitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), pm.postCommitTimeout)
}

func (pm *PurchaseManager) invalidate(ctx context.Context, purchaseId int) {
	ctx, cancel := pm.postCommitContext(ctx)
	defer cancel()

	var err error
	for range invalidateAttempts {
		err = pm.cache.Invalidate(ctx, purchaseId)
		if err == nil {
			return
		}
	}

	pm.logger.Warn("failed to invalidate cached purchase", "purchase_id", purchaseId, "error", err)
}

func (pm *PurchaseManager) publish(ctx context.Context, eventType domain.EventType, purchase domain.Purchase, details []domain.PurchaseDetail) {
	event := domain.PurchaseEvent{
		Type:       eventType,
		PurchaseId: purchase.Id,
		UserId:     purchase.UserId,
		Status:     purchase.Status,
		Total:      purchase.Total,
		Items:      domain.NewEventItems(details),
		OccurredAt: time.Now().UTC(),
	}

	ctx, cancel := pm.postCommitContext(ctx)
	defer cancel()

	err := pm.publisher.Publish(ctx, event)
	if err != nil {
		pm.logger.Warn("failed to publish purchase event", "purchase_id", purchase.Id, "error", err)
	}
}
