package domain

import "context"

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	// ListCompatibility returns all pairs, or only the pairs touching
	// componentID when it is non-zero.
	ListCompatibility(ctx context.Context, componentID int) ([]Compatibility, error)
	CreateCompatibility(ctx context.Context, component1ID, component2ID int) (*Compatibility, error)
	ListConfigurations(ctx context.Context) ([]Configuration, error)
	GetCustomConfiguration(ctx context.Context, id int) (*Configuration, error)
	// CreateConfiguration inserts the configuration and its product
	// links in one transaction; any failure rolls back the whole batch.
	CreateConfiguration(ctx context.Context, cfg *Configuration, items []ConfigurationItem) (*Configuration, error)
	ListConfigurationProducts(ctx context.Context, configurationID int) ([]ConfigurationProduct, error)
	ListOrders(ctx context.Context) ([]Order, error)
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
}
