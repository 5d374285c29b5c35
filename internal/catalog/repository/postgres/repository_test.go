package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ErDev77/pc-configurator-sub001/internal/catalog/domain"
	repo "github.com/ErDev77/pc-configurator-sub001/internal/catalog/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCatalogRepository(mock)

	columns := []string{"id", "name", "category", "price", "description", "image_url", "in_stock", "created_at"}
	mock.ExpectQuery("SELECT id, name, category").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, "Ryzen 7 7800X3D", "cpu", 349.99, "8-core CPU", "", true, time.Now()).
			AddRow(2, "RTX 4070", "gpu", 599.0, "", "https://img.example/4070.png", true, time.Now()))

	products, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Ryzen 7 7800X3D", products[0].Name)
	assert.Equal(t, "gpu", products[1].Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCompatibility(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCatalogRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "component1_id", "component2_id"}

	t.Run("filtered by component", func(t *testing.T) {
		// The filter must match the component on either side of a pair.
		mock.ExpectQuery(`WHERE component1_id = \$1 OR component2_id = \$1`).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(1, 5, 9).
				AddRow(2, 3, 5))

		pairs, err := r.ListCompatibility(ctx, 5)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		for _, p := range pairs {
			assert.True(t, p.Component1ID == 5 || p.Component2ID == 5)
		}
	})

	t.Run("unfiltered", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, component1_id, component2_id").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 5, 9))

		pairs, err := r.ListCompatibility(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, pairs, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompatibility(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCatalogRepository(mock)

	mock.ExpectQuery("INSERT INTO compatibility").
		WithArgs(3, 7).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

	pair, err := r.CreateCompatibility(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 11, pair.ID)
	assert.Equal(t, 3, pair.Component1ID)
	assert.Equal(t, 7, pair.Component2ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomConfiguration(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCatalogRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "name", "description", "price", "image_url", "custom", "created_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name").
			WithArgs(4).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(4, "Custom build", "", 1250.0, "", true, time.Now()))

		cfg, err := r.GetCustomConfiguration(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.ID)
		assert.True(t, cfg.Custom)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name").
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		cfg, err := r.GetCustomConfiguration(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfiguration(t *testing.T) {
	ctx := context.Background()

	cfg := &domain.Configuration{Name: "Gaming rig", Price: 1999.99}
	items := []domain.ConfigurationItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 2},
	}

	t.Run("commits configuration and links together", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewCatalogRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO configurations").
			WithArgs("Gaming rig", "", 1999.99, "", false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))
		mock.ExpectExec("INSERT INTO configuration_products").
			WithArgs(10, 1, 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO configuration_products").
			WithArgs(10, 2, 2).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback()

		created, err := r.CreateConfiguration(ctx, cfg, items)
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back the whole batch on a failed link", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewCatalogRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO configurations").
			WithArgs("Gaming rig", "", 1999.99, "", false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))
		mock.ExpectExec("INSERT INTO configuration_products").
			WithArgs(10, 1, 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO configuration_products").
			WithArgs(10, 2, 2).
			WillReturnError(fmt.Errorf("fk violation"))
		mock.ExpectRollback()

		created, err := r.CreateConfiguration(ctx, cfg, items)
		assert.Error(t, err)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		order := &domain.Order{
			CustomerName: "Jordan",
			Email:        "jordan@example.com",
			Phone:        "+123456789",
			Address:      "1 Main St",
			Items:        []domain.OrderItem{{ProductID: 1, Name: "RTX 4070", Quantity: 1, Price: 599}},
			Total:        599,
		}

		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("Jordan", "jordan@example.com", "+123456789", "1 Main St", pgxmock.AnyArg(), 599.0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(21, time.Now()))

		created, err := r.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, 21, created.ID)
		assert.Equal(t, "new", created.Status)
	})

	t.Run("list decodes items", func(t *testing.T) {
		columns := []string{"id", "customer_name", "email", "phone", "address", "items", "total", "status", "created_at"}
		rawItems := []byte(`[{"productId":1,"name":"RTX 4070","quantity":1,"price":599}]`)

		mock.ExpectQuery("SELECT id, customer_name").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(21, "Jordan", "jordan@example.com", "+123456789", "1 Main St", rawItems, 599.0, "new", time.Now()))

		orders, err := r.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, "RTX 4070", orders[0].Items[0].Name)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
