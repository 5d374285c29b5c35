package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ErDev77/pc-configurator-sub001/internal/catalog/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CatalogRepository struct {
	db PgxIface
}

func NewCatalogRepository(db PgxIface) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, price, COALESCE(description, ''), COALESCE(image_url, ''), in_stock, created_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.InStock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *CatalogRepository) ListCompatibility(ctx context.Context, componentID int) ([]domain.Compatibility, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if componentID != 0 {
		rows, err = r.db.Query(ctx, `
			SELECT id, component1_id, component2_id
			FROM compatibility
			WHERE component1_id = $1 OR component2_id = $1
			ORDER BY id
		`, componentID)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT id, component1_id, component2_id
			FROM compatibility
			ORDER BY id
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list compatibility pairs: %w", err)
	}
	defer rows.Close()

	var pairs []domain.Compatibility
	for rows.Next() {
		var p domain.Compatibility
		if err := rows.Scan(&p.ID, &p.Component1ID, &p.Component2ID); err != nil {
			return nil, fmt.Errorf("failed to scan compatibility pair: %w", err)
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}

func (r *CatalogRepository) CreateCompatibility(ctx context.Context, component1ID, component2ID int) (*domain.Compatibility, error) {
	pair := domain.Compatibility{Component1ID: component1ID, Component2ID: component2ID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO compatibility (component1_id, component2_id)
		VALUES ($1, $2)
		RETURNING id
	`, component1ID, component2ID).Scan(&pair.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create compatibility pair: %w", err)
	}

	return &pair, nil
}

func (r *CatalogRepository) ListConfigurations(ctx context.Context) ([]domain.Configuration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), custom, created_at
		FROM configurations
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	defer rows.Close()

	var configs []domain.Configuration
	for rows.Next() {
		var cfg domain.Configuration
		if err := rows.Scan(&cfg.ID, &cfg.Name, &cfg.Description, &cfg.Price, &cfg.ImageURL, &cfg.Custom, &cfg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan configuration: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *CatalogRepository) GetCustomConfiguration(ctx context.Context, id int) (*domain.Configuration, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), custom, created_at
		FROM configurations
		WHERE id = $1 AND custom = true
		LIMIT 1
	`, id)

	var cfg domain.Configuration
	err := row.Scan(&cfg.ID, &cfg.Name, &cfg.Description, &cfg.Price, &cfg.ImageURL, &cfg.Custom, &cfg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get custom configuration: %w", err)
	}

	return &cfg, nil
}

func (r *CatalogRepository) CreateConfiguration(ctx context.Context, cfg *domain.Configuration, items []domain.ConfigurationItem) (*domain.Configuration, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	created := *cfg
	err = tx.QueryRow(ctx, `
		INSERT INTO configurations (name, description, price, image_url, custom)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, cfg.Name, cfg.Description, cfg.Price, cfg.ImageURL, cfg.Custom).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO configuration_products (configuration_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, created.ID, item.ProductID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to attach product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit configuration: %w", err)
	}

	return &created, nil
}

func (r *CatalogRepository) ListConfigurationProducts(ctx context.Context, configurationID int) ([]domain.ConfigurationProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cp.id, cp.configuration_id, cp.product_id, cp.quantity, p.name, p.price, COALESCE(p.image_url, '')
		FROM configuration_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.configuration_id = $1
		ORDER BY cp.id
	`, configurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list configuration products: %w", err)
	}
	defer rows.Close()

	var links []domain.ConfigurationProduct
	for rows.Next() {
		var cp domain.ConfigurationProduct
		if err := rows.Scan(&cp.ID, &cp.ConfigurationID, &cp.ProductID, &cp.Quantity, &cp.Name, &cp.Price, &cp.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan configuration product: %w", err)
		}
		links = append(links, cp)
	}

	return links, rows.Err()
}

func (r *CatalogRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, email, phone, address, items, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o        domain.Order
			rawItems []byte
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Email, &o.Phone, &o.Address, &rawItems, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(rawItems, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *CatalogRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	rawItems, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	created := *order
	created.Status = "new"
	err = r.db.QueryRow(ctx, `
		INSERT INTO orders (customer_name, email, phone, address, items, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'new')
		RETURNING id, created_at
	`, order.CustomerName, order.Email, order.Phone, order.Address, rawItems, order.Total).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &created, nil
}
