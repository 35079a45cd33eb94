package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage uses. Declared as an
// interface so tests can substitute a pgxmock pool.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type operatorRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Operators() repository.OperatorRepository {
	return &operatorRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS operators (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT UNIQUE NOT NULL,
            reward_point DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            total_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
            order_date TIMESTAMPTZ NOT NULL,
            delivery_window TEXT NOT NULL DEFAULT '',
            version BIGINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS partial_payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            paid_at TIMESTAMPTZ NOT NULL,
            amount_paid DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS timeline_events (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            event_date TIMESTAMPTZ NOT NULL,
            action TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_partial_payments_order ON partial_payments(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_timeline_events_order ON timeline_events(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OperatorRepository implementation ---

func (r *operatorRepository) Create(ctx context.Context, login, passwordHash string) (*model.Operator, error) {
	const query = `INSERT INTO operators (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var op model.Operator
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&op.ID, &op.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	op.Login = login
	op.PasswordHash = passwordHash
	return &op, nil
}

func (r *operatorRepository) GetByLogin(ctx context.Context, login string) (*model.Operator, error) {
	const query = `SELECT id, login, password_hash, created_at FROM operators WHERE login=$1`
	var op model.Operator
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&op.ID, &op.Login, &op.PasswordHash, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

func (r *operatorRepository) GetByID(ctx context.Context, id int64) (*model.Operator, error) {
	const query = `SELECT id, login, password_hash, created_at FROM operators WHERE id=$1`
	var op model.Operator
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&op.ID, &op.Login, &op.PasswordHash, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, name, phone string) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, phone) VALUES ($1, $2) RETURNING id, reward_point, created_at`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, name, phone).Scan(&c.ID, &c.RewardPoint, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	c.Phone = phone
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, phone, reward_point, created_at FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.RewardPoint, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- OrderRepository implementation ---

const orderColumns = `o.id, o.number, o.customer_id, o.total_amount, o.status, o.payment_status,
       o.total_paid, o.order_date, o.delivery_window, o.version, o.created_at, o.updated_at,
       c.name, c.phone, c.reward_point`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Number, &o.CustomerID, &o.TotalAmount, &o.Status, &o.PaymentStatus,
		&o.Payment.TotalPaid, &o.OrderDate, &o.DeliveryWindow, &o.Version, &o.CreatedAt, &o.UpdatedAt,
		&o.Customer.Name, &o.Customer.Phone, &o.Customer.RewardPoint)
	if err != nil {
		return nil, err
	}
	o.Payment.TotalAmount = o.TotalAmount
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	var orderID int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (number, customer_id, total_amount, status, payment_status, order_date, delivery_window)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING id`
		err := tx.QueryRow(ctx, insertOrder,
			order.Number, order.CustomerID, order.TotalAmount,
			model.OrderStatusPending, model.PaymentStatusPending,
			order.OrderDate, order.DeliveryWindow,
		).Scan(&orderID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return domainErrors.ErrAlreadyExists
				case "23503":
					return domainErrors.ErrNotFound
				}
			}
			return err
		}

		const insertEvent = `INSERT INTO timeline_events (order_id, event_date, action) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insertEvent, orderID, order.Entry.Date, order.Entry.Action); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN customers c ON c.id=o.customer_id WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const paymentsQuery = `SELECT paid_at, amount_paid FROM partial_payments WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, paymentsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p model.PartialPayment
		if err := rows.Scan(&p.Date, &p.AmountPaid); err != nil {
			return nil, err
		}
		order.Payment.PartialPayments = append(order.Payment.PartialPayments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const timelineQuery = `SELECT event_date, action FROM timeline_events WHERE order_id=$1 ORDER BY id`
	events, err := r.storage.pool.Query(ctx, timelineQuery, id)
	if err != nil {
		return nil, err
	}
	defer events.Close()
	for events.Next() {
		var e model.TimelineEntry
		if err := events.Scan(&e.Date, &e.Action); err != nil {
			return nil, err
		}
		order.Timeline = append(order.Timeline, e)
	}
	if err := events.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns the flat order view, newest first. Per-order ledger and
// timeline are loaded by GetByID only.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN customers c ON c.id=o.customer_id ORDER BY o.order_date DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ApplyPayment(ctx context.Context, upd repository.PaymentUpdate) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOrder = `UPDATE orders SET total_paid=$1, payment_status=$2, version=version+1, updated_at=NOW()
                             WHERE id=$3 AND version=$4`
		tag, err := tx.Exec(ctx, updateOrder, upd.TotalPaid, upd.PaymentStatus, upd.OrderID, upd.ExpectedVersion)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrConflict
		}

		const insertPayment = `INSERT INTO partial_payments (order_id, paid_at, amount_paid) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insertPayment, upd.OrderID, upd.Entry.Date, upd.Entry.AmountPaid); err != nil {
			return err
		}

		const updateReward = `UPDATE customers SET reward_point=$1 WHERE id=$2`
		tag, err = tx.Exec(ctx, updateReward, upd.RewardPoint, upd.CustomerID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, upd.OrderID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, upd repository.StatusUpdate) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOrder = `UPDATE orders SET status=$1, version=version+1, updated_at=NOW()
                             WHERE id=$2 AND version=$3`
		tag, err := tx.Exec(ctx, updateOrder, upd.Status, upd.OrderID, upd.ExpectedVersion)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrConflict
		}

		const insertEvent = `INSERT INTO timeline_events (order_id, event_date, action) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insertEvent, upd.OrderID, upd.Entry.Date, upd.Entry.Action); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, upd.OrderID)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
