package dto

type CreateCompatibilityInput struct {
	Component1ID int `json:"component1Id"`
	Component2ID int `json:"component2Id"`
}
