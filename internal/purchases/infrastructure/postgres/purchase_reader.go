package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/jackc/pgx/v5"
)

// PurchaseReader assembles purchase views with two queries joined in memory.
// The two reads are not snapshot-consistent with each other.
type PurchaseReader struct {
	querier database.Querier
}

func NewPurchaseReader(querier database.Querier) *PurchaseReader {
	return &PurchaseReader{
		querier: querier,
	}
}

func (pr *PurchaseReader) FetchPurchase(ctx context.Context, purchaseId int) (domain.PurchaseView, error) {
	purchaseSQL := `SELECT p.id, u.name, p.total, p.status, p.purchase_date
FROM purchases p
JOIN users u ON u.id = p.user_id
WHERE p.id = $1`

	var view domain.PurchaseView
	err := pr.querier.QueryRow(ctx, purchaseSQL, purchaseId).Scan(
		&view.Id,
		&view.User,
		&view.Total,
		&view.Status,
		&view.PurchaseDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PurchaseView{}, domain.NewPurchaseNotFoundError(purchaseId)
		}

		return domain.PurchaseView{}, fmt.Errorf("failed to select purchase: %w", err)
	}

	detailsSQL := `SELECT pd.id, pd.purchase_id, prod.name, pd.quantity, pd.price, pd.subtotal
FROM purchase_details pd
JOIN products prod ON prod.id = pd.product_id
WHERE pd.purchase_id = $1
ORDER BY pd.id`
	rows, err := pr.querier.Query(ctx, detailsSQL, purchaseId)
	if err != nil {
		return domain.PurchaseView{}, fmt.Errorf("failed to select purchase details: %w", err)
	}
	defer rows.Close()

	grouped, err := groupDetailRows(rows)
	if err != nil {
		return domain.PurchaseView{}, err
	}

	view.Total = domain.RoundMoney(view.Total)
	view.Details = detailsOrEmpty(grouped[view.Id])

	return view, nil
}

func (pr *PurchaseReader) FetchPurchases(ctx context.Context) ([]domain.PurchaseView, error) {
	purchasesSQL := `SELECT p.id, u.name, p.total, p.status, p.purchase_date
FROM purchases p
JOIN users u ON u.id = p.user_id
ORDER BY p.id DESC`
	rows, err := pr.querier.Query(ctx, purchasesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}

	views := make([]domain.PurchaseView, 0)
	for rows.Next() {
		var view domain.PurchaseView
		if err := rows.Scan(&view.Id, &view.User, &view.Total, &view.Status, &view.PurchaseDate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		view.Total = domain.RoundMoney(view.Total)
		views = append(views, view)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase rows: %w", err)
	}

	if len(views) == 0 {
		return views, nil
	}

	purchaseIds := make([]int, 0, len(views))
	for _, v := range views {
		purchaseIds = append(purchaseIds, v.Id)
	}

	detailsSQL := `SELECT pd.id, pd.purchase_id, prod.name, pd.quantity, pd.price, pd.subtotal
FROM purchase_details pd
JOIN products prod ON prod.id = pd.product_id
WHERE pd.purchase_id = ANY($1)
ORDER BY pd.id`
	detailRows, err := pr.querier.Query(ctx, detailsSQL, purchaseIds)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchase details: %w", err)
	}
	defer detailRows.Close()

	grouped, err := groupDetailRows(detailRows)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].Details = detailsOrEmpty(grouped[views[i].Id])
	}

	return views, nil
}

func groupDetailRows(rows pgx.Rows) (map[int][]domain.DetailView, error) {
	grouped := make(map[int][]domain.DetailView)

	for rows.Next() {
		var (
			purchaseId int
			d          domain.DetailView
		)
		if err := rows.Scan(&d.Id, &purchaseId, &d.Product, &d.Quantity, &d.Price, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan purchase detail row: %w", err)
		}

		d.Price = domain.RoundMoney(d.Price)
		d.Subtotal = domain.RoundMoney(d.Subtotal)
		grouped[purchaseId] = append(grouped[purchaseId], d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase detail rows: %w", err)
	}

	return grouped, nil
}

func detailsOrEmpty(details []domain.DetailView) []domain.DetailView {
	if details == nil {
		return []domain.DetailView{}
	}

	return details
}
