package repositories

import (
	"context"

	"fulfill-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateWithLines inserts an order and all of its lines in one transaction,
// so a failed line insert never leaves a half-created order behind.
func (r *OrderRepository) CreateWithLines(ctx context.Context, o *models.Order, lines []*models.OrderLine) error {
	if o.Status == "" {
		o.Status = "active"
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders(reference, customer_name, seller_id, status, notes)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		o.Reference, o.CustomerName, o.SellerID, o.Status, o.Notes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	for _, l := range lines {
		l.OrderID = o.ID
		if l.LifecycleStatus == "" {
			l.LifecycleStatus = "new"
		}
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO order_lines(order_id, product_name, sku, quantity, lifecycle_status)
             VALUES($1, $2, $3, $4, $5)
             RETURNING id, created_at, updated_at`,
			l.OrderID, l.ProductName, l.SKU, l.Quantity, l.LifecycleStatus,
		).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT o.id, o.reference, o.customer_name, o.seller_id, COALESCE(u.name, ''),
		 o.status, o.notes, o.closed_at, o.created_at, o.updated_at
         FROM orders o LEFT JOIN users u ON u.id = o.seller_id
         WHERE o.id=$1`, id)

	var order models.Order
	err := row.Scan(&order.ID, &order.Reference, &order.CustomerName, &order.SellerID,
		&order.SellerName, &order.Status, &order.Notes, &order.ClosedAt,
		&order.CreatedAt, &order.UpdatedAt)
	return &order, err
}

// List returns orders newest first, optionally filtered by seller
func (r *OrderRepository) List(ctx context.Context, sellerID int, limit, offset int) ([]*models.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `SELECT o.id, o.reference, o.customer_name, o.seller_id, COALESCE(u.name, ''),
	          o.status, o.notes, o.closed_at, o.created_at, o.updated_at
	          FROM orders o LEFT JOIN users u ON u.id = o.seller_id`
	args := []interface{}{}
	if sellerID > 0 {
		query += ` WHERE o.seller_id=$1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, sellerID, limit, offset)
	} else {
		query += ` ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(&order.ID, &order.Reference, &order.CustomerName, &order.SellerID,
			&order.SellerName, &order.Status, &order.Notes, &order.ClosedAt,
			&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE orders SET customer_name=$1, notes=$2, status=$3, updated_at=CURRENT_TIMESTAMP
         WHERE id=$4`,
		o.CustomerName, o.Notes, o.Status, o.ID)
	return err
}

// Touch bumps updated_at, used after line-level mutations so list ordering
// reflects recent activity
func (r *OrderRepository) Touch(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE orders SET updated_at=CURRENT_TIMESTAMP WHERE id=$1`, id)
	return err
}

func (r *OrderRepository) Count(ctx context.Context, sellerID int) (int, error) {
	var count int
	var err error
	if sellerID > 0 {
		err = r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE seller_id=$1`, sellerID).Scan(&count)
	} else {
		err = r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	}
	return count, err
}
