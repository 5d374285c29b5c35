package domain

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// Compatibility records that two components are known to work together.
// Pairs are symmetric: a lookup for component N matches either side.
type Compatibility struct {
	ID           int `json:"id"`
	Component1ID int `json:"component1_id"`
	Component2ID int `json:"component2_id"`
}

type Configuration struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Custom      bool      `json:"custom"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConfigurationItem is a product reference inside a configuration to be
// created.
type ConfigurationItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// ConfigurationProduct is a product link joined with its product row.
type ConfigurationProduct struct {
	ID              int     `json:"id"`
	ConfigurationID int     `json:"configuration_id"`
	ProductID       int     `json:"product_id"`
	Quantity        int     `json:"quantity"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"image_url"`
}

type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
