package application

import (
	"context"
	"strconv"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"golang.org/x/sync/singleflight"
)

// PurchaseQuery serves read models. Single purchases go through the view cache,
// concurrent misses for the same id share one database read.
type PurchaseQuery struct {
	reader domain.PurchaseReader
	cache  domain.ViewCache
	logger logging.Logger
	group  singleflight.Group
}

func NewPurchaseQuery(reader domain.PurchaseReader, cache domain.ViewCache, logger logging.Logger) *PurchaseQuery {
	return &PurchaseQuery{
		reader: reader,
		cache:  cache,
		logger: logger,
	}
}

func (pq *PurchaseQuery) GetPurchase(ctx context.Context, purchaseId int) (domain.PurchaseView, error) {
	view, found, err := pq.cache.Get(ctx, purchaseId)
	if err != nil {
		pq.logger.Warn("failed to read cached purchase", "purchase_id", purchaseId, "error", err)
	} else if found {
		return view, nil
	}

	result, err, _ := pq.group.Do(strconv.Itoa(purchaseId), func() (any, error) {
		// Shared by every waiter on this id, so one caller's cancellation must not fail the rest.
		ctx := context.WithoutCancel(ctx)

		view, err := pq.reader.FetchPurchase(ctx, purchaseId)
		if err != nil {
			return domain.PurchaseView{}, err
		}

		err = pq.cache.Set(ctx, view)
		if err != nil {
			pq.logger.Warn("failed to cache purchase", "purchase_id", purchaseId, "error", err)
		}

		return view, nil
	})
	if err != nil {
		return domain.PurchaseView{}, err
	}

	return result.(domain.PurchaseView), nil
}

func (pq *PurchaseQuery) ListPurchases(ctx context.Context) ([]domain.PurchaseView, error) {
	return pq.reader.FetchPurchases(ctx)
}
