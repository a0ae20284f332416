package repositories

import (
	"context"

	"fulfill-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderLineRepository struct {
	DB *pgxpool.Pool
}

func NewOrderLineRepository(db *pgxpool.Pool) *OrderLineRepository {
	return &OrderLineRepository{DB: db}
}

func (r *OrderLineRepository) Get(ctx context.Context, id int) (*models.OrderLine, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, order_id, product_name, sku, quantity, lifecycle_status,
		 mfg_qc_status, pkg_qc_status, created_at, updated_at
         FROM order_lines WHERE id=$1`, id)

	var line models.OrderLine
	err := row.Scan(&line.ID, &line.OrderID, &line.ProductName, &line.SKU,
		&line.Quantity, &line.LifecycleStatus, &line.MfgQcStatus, &line.PkgQcStatus,
		&line.CreatedAt, &line.UpdatedAt)
	return &line, err
}

// ListByOrder returns an order's lines in insertion order
func (r *OrderLineRepository) ListByOrder(ctx context.Context, orderID int) ([]*models.OrderLine, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, order_id, product_name, sku, quantity, lifecycle_status,
		 mfg_qc_status, pkg_qc_status, created_at, updated_at
         FROM order_lines WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		err := rows.Scan(&line.ID, &line.OrderID, &line.ProductName, &line.SKU,
			&line.Quantity, &line.LifecycleStatus, &line.MfgQcStatus, &line.PkgQcStatus,
			&line.CreatedAt, &line.UpdatedAt)
		if err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}
	return lines, nil
}

// UpdateLifecycleStatus moves a line to a new lifecycle stage
func (r *OrderLineRepository) UpdateLifecycleStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE order_lines SET lifecycle_status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}

// UpdateQcStatus sets one of the two QC sub-status columns
func (r *OrderLineRepository) UpdateQcStatus(ctx context.Context, id int, qcType, status string) error {
	column := "mfg_qc_status"
	if qcType == "pkg_qc" {
		column = "pkg_qc_status"
	}
	_, err := r.DB.Exec(ctx,
		`UPDATE order_lines SET `+column+`=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}
