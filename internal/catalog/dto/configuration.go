package dto

import "github.com/ErDev77/pc-configurator-sub001/internal/catalog/domain"

type CreateConfigurationInput struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Price       float64                    `json:"price"`
	ImageURL    string                     `json:"imageUrl"`
	Custom      bool                       `json:"custom"`
	Products    []domain.ConfigurationItem `json:"products"`
}
