package models

import "time"

// Shop represents a registered duka (shop/location) owning products,
// sales and salesmen.
type Shop struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	Email         *string   `json:"email,omitempty"`
	GSTIN         *string   `json:"gstin,omitempty"`
	IsActive      bool      `json:"isActive"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ShopCreation represents the data needed to register a shop
type ShopCreation struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Address       string  `json:"address" validate:"required,max=200"`
	ContactNumber string  `json:"contactNumber" validate:"required,mobile"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	GSTIN         *string `json:"gstin,omitempty" validate:"omitempty,max=20"`
}

// ShopUpdate represents a partial shop update
type ShopUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=200"`
	ContactNumber *string `json:"contactNumber,omitempty" validate:"omitempty,mobile"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	GSTIN         *string `json:"gstin,omitempty" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"isActive,omitempty"`
}
