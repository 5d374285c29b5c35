package dto

import "github.com/ErDev77/pc-configurator-sub001/internal/catalog/domain"

type CreateOrderInput struct {
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Items        []domain.OrderItem `json:"items"`
	Total        float64            `json:"total"`
}
