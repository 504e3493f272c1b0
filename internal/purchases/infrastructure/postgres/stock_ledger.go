package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/jackc/pgx/v5"
)

type StockLedger struct{}

func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// LockProducts row-locks the given products in ascending id order until the
// surrounding transaction ends. Missing ids are simply absent from the result.
func (sl *StockLedger) LockProducts(ctx context.Context, querier database.Querier, productIds []int) (map[int]domain.ProductInfo, error) {
	ids := slices.Clone(productIds)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	lockProductsSQL := `SELECT id, name, stock FROM products
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`
	rows, err := querier.Query(ctx, lockProductsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	defer rows.Close()

	products := make(map[int]domain.ProductInfo, len(ids))
	for rows.Next() {
		var product domain.ProductInfo
		if err := rows.Scan(&product.Id, &product.Name, &product.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products[product.Id] = product
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

// Reserve decrements stock only when enough is available and returns the product name.
func (sl *StockLedger) Reserve(ctx context.Context, querier database.Querier, productId int, quantity int) (string, error) {
	reserveSQL := `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1 RETURNING name`

	var name string
	err := querier.QueryRow(ctx, reserveSQL, quantity, productId).Scan(&name)
	if err == nil {
		return name, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to reserve stock for product %d: %w", productId, err)
	}

	findProductSQL := `SELECT name FROM products WHERE id = $1`
	err = querier.QueryRow(ctx, findProductSQL, productId).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewProductNotFoundError(productId)
		}

		return "", fmt.Errorf("failed to find product %d: %w", productId, err)
	}

	return "", domain.NewInsufficientStockError(productId, name)
}

func (sl *StockLedger) Release(ctx context.Context, executor database.Executor, productId int, quantity int) error {
	releaseSQL := `UPDATE products SET stock = stock + $1 WHERE id = $2`
	tag, err := executor.Exec(ctx, releaseSQL, quantity, productId)
	if err != nil {
		return fmt.Errorf("failed to release stock for product %d: %w", productId, err)
	} else if tag.RowsAffected() == 0 {
		return domain.NewProductNotFoundError(productId)
	}

	return nil
}
