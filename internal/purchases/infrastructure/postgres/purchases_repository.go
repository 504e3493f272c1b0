package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/jackc/pgx/v5"
)

type PurchasesRepository struct{}

func NewPurchasesRepository() *PurchasesRepository {
	return &PurchasesRepository{}
}

func (pr *PurchasesRepository) LockPurchase(ctx context.Context, querier database.Querier, purchaseId int) (domain.Purchase, error) {
	lockPurchaseSQL := `SELECT id, user_id, total, status, purchase_date, updated_at FROM purchases WHERE id = $1 FOR UPDATE`

	var purchase domain.Purchase
	err := querier.QueryRow(ctx, lockPurchaseSQL, purchaseId).Scan(
		&purchase.Id,
		&purchase.UserId,
		&purchase.Total,
		&purchase.Status,
		&purchase.PurchaseDate,
		&purchase.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Purchase{}, domain.NewPurchaseNotFoundError(purchaseId)
		}

		return domain.Purchase{}, fmt.Errorf("failed to lock purchase row: %w", err)
	}

	return purchase, nil
}

func (pr *PurchasesRepository) FetchDetails(ctx context.Context, querier database.Querier, purchaseId int) ([]domain.PurchaseDetail, error) {
	detailsSQL := `SELECT id, purchase_id, product_id, quantity, price, subtotal
FROM purchase_details
WHERE purchase_id = $1
ORDER BY id`
	rows, err := querier.Query(ctx, detailsSQL, purchaseId)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchase details: %w", err)
	}
	defer rows.Close()

	details := make([]domain.PurchaseDetail, 0, domain.MaxItems)
	for rows.Next() {
		var d domain.PurchaseDetail
		if err := rows.Scan(&d.Id, &d.PurchaseId, &d.ProductId, &d.Quantity, &d.Price, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan purchase detail row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase detail rows: %w", err)
	}

	return details, nil
}

func (pr *PurchasesRepository) InsertPurchase(ctx context.Context, querier database.Querier, purchase domain.Purchase) (int, error) {
	insertPurchaseSQL := `INSERT INTO purchases (user_id, total, status) VALUES ($1, $2, $3) RETURNING id`

	var purchaseId int
	err := querier.QueryRow(ctx, insertPurchaseSQL, purchase.UserId, purchase.Total, purchase.Status).Scan(&purchaseId)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %d does not exist", purchase.UserId)}
		}

		return 0, fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return purchaseId, nil
}

func (pr *PurchasesRepository) InsertDetails(ctx context.Context, executor database.Executor, purchaseId int, details []domain.PurchaseDetail) error {
	insertDetailSQL := `INSERT INTO purchase_details (purchase_id, product_id, quantity, price, subtotal) VALUES ($1, $2, $3, $4, $5)`

	for _, d := range details {
		_, err := executor.Exec(ctx, insertDetailSQL, purchaseId, d.ProductId, d.Quantity, d.Price, d.Subtotal)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewProductNotFoundError(d.ProductId)
			}

			return fmt.Errorf("failed to insert purchase detail: %w", err)
		}
	}

	return nil
}

func (pr *PurchasesRepository) UpdatePurchase(ctx context.Context, executor database.Executor, purchase domain.Purchase) error {
	updatePurchaseSQL := `UPDATE purchases SET user_id = $1, status = $2, total = $3, updated_at = now() WHERE id = $4`

	tag, err := executor.Exec(ctx, updatePurchaseSQL, purchase.UserId, purchase.Status, purchase.Total, purchase.Id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user %d does not exist", purchase.UserId)}
		}

		return fmt.Errorf("failed to update purchase record: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.NewPurchaseNotFoundError(purchase.Id)
	}

	return nil
}

func (pr *PurchasesRepository) DeleteDetails(ctx context.Context, executor database.Executor, purchaseId int) error {
	deleteDetailsSQL := `DELETE FROM purchase_details WHERE purchase_id = $1`

	_, err := executor.Exec(ctx, deleteDetailsSQL, purchaseId)
	if err != nil {
		return fmt.Errorf("failed to delete purchase details: %w", err)
	}

	return nil
}

// DeletePurchase removes the purchase row; its details go with it through ON DELETE CASCADE.
func (pr *PurchasesRepository) DeletePurchase(ctx context.Context, executor database.Executor, purchaseId int) error {
	deletePurchaseSQL := `DELETE FROM purchases WHERE id = $1`

	tag, err := executor.Exec(ctx, deletePurchaseSQL, purchaseId)
	if err != nil {
		return fmt.Errorf("failed to delete purchase record: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.NewPurchaseNotFoundError(purchaseId)
	}

	return nil
}
